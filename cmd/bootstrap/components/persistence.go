package components

import (
	"context"
	"log/slog"
	"time"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/infra/repository"
	"fleet-ledger/internal/pkg/config"
	"fleet-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const stateLoadTimeout = 30 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewLedgerStore,
		NewLedgerState,
	),
)

// NewLedgerStore picks PostgreSQL when a pool is configured.
func NewLedgerStore(pool *pgxpool.Pool, logger *slog.Logger) shared.LedgerStore {
	if pool == nil {
		return repository.NewMemoryStore()
	}
	return repository.NewPostgresStore(pool, logger)
}

func NewLedgerState(cfg config.Config, store shared.LedgerStore, logger *slog.Logger) (*shared.LedgerState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), stateLoadTimeout)
	defer cancel()

	state, err := shared.LoadLedgerState(ctx, store, fleet.Options{
		RequireDrivingLicense: cfg.Ledger.RequireDrivingLicense,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("ledger state loaded", "require_driving_license", cfg.Ledger.RequireDrivingLicense)
	return state, nil
}
