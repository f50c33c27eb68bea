package shared

import (
	"context"

	"fleet-ledger/internal/domain/fleet"
)

// Snapshot is every persisted record, enough to rebuild the ledger.
type Snapshot struct {
	Owners   []fleet.Owner
	Users    []fleet.User
	Cars     []fleet.Car
	Bookings []fleet.Booking
}

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/store_mock.go -package=sharedmock

// LedgerStore persists committed operations. Save must apply changes and
// append events atomically: either both land or neither does.
type LedgerStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, changes fleet.ChangeSet, events []fleet.Event) error
}

// EventPublisher observes events after their operation is durable.
type EventPublisher interface {
	Publish(ctx context.Context, events []fleet.Event)
}
