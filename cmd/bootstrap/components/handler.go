package components

import (
	"fleet-ledger/internal/handler"
	"fleet-ledger/internal/handler/api"
	"fleet-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRegistryHandler,
		api.NewCarHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(registry *api.RegistryHandler, cars *api.CarHandler, bookings *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Registry: registry, Cars: cars, Bookings: bookings}
		},
	),
	fx.Invoke(handler.NewRouter),
)
