package components

import (
	"fleet-ledger/internal/infra/eventlog"
	"fleet-ledger/internal/pkg/clock"
	"fleet-ledger/internal/usecase"
	"fleet-ledger/internal/usecase/commands"
	"fleet-ledger/internal/usecase/queries"
	"fleet-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewMonotonic,
	fx.Annotate(
		eventlog.NewLogPublisher,
		fx.As(new(shared.EventPublisher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFleetCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFleetQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
