package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleet-ledger/internal/handler/api"
	"fleet-ledger/internal/handler/middleware"
	"fleet-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Registry *api.RegistryHandler
	Cars     *api.CarHandler
	Bookings *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/identities/:id", Handler: h.Registry.Identity},
			{Method: http.MethodGet, Path: "/owners/:id/cars", Handler: h.Registry.ListOwnerCars},
			{Method: http.MethodGet, Path: "/users/:id/bookings", Handler: h.Registry.ListUserBookings},
			{Method: http.MethodGet, Path: "/cars/available", Handler: h.Cars.ListAvailableCars},
			{Method: http.MethodGet, Path: "/cars/:id", Handler: h.Cars.GetCar},
			{Method: http.MethodGet, Path: "/cars/:id/availability", Handler: h.Cars.CarAvailability},
		})

		// every ledger mutation is a call: who is calling and what they attached
		calls := apiGroup.Group("")
		calls.Use(authMiddleware.RequireAuth(), middleware.AttachedPayment())
		addRoutes(calls, []route{
			{Method: http.MethodPost, Path: "/owners", Handler: h.Registry.RegisterOwner},
			{Method: http.MethodPost, Path: "/users", Handler: h.Registry.RegisterUser},
			{Method: http.MethodPost, Path: "/cars", Handler: h.Cars.AddCar},
			{Method: http.MethodDelete, Path: "/cars/:id", Handler: h.Cars.DeleteCar},
			{Method: http.MethodPost, Path: "/cars/:id/return", Handler: h.Cars.ReturnCar},
			{Method: http.MethodPost, Path: "/rentals", Handler: h.Cars.RentCar},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.BookCar},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Bookings.CancelBooking},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
