package repository

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/shared"
)

// MemoryStore keeps committed records in process. It backs the ledger when
// no database is configured; nothing survives a restart.
type MemoryStore struct {
	mu       sync.Mutex
	owners   map[fleet.Identity]fleet.Owner
	users    map[fleet.Identity]fleet.User
	cars     map[string]fleet.Car
	bookings map[string]fleet.Booking
	events   []fleet.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:   make(map[fleet.Identity]fleet.Owner),
		users:    make(map[fleet.Identity]fleet.User),
		cars:     make(map[string]fleet.Car),
		bookings: make(map[string]fleet.Booking),
	}
}

func (s *MemoryStore) Load(_ context.Context) (shared.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return shared.Snapshot{
		Owners:   sortedValues(s.owners, func(a, b fleet.Owner) int { return cmp.Compare(a.OwnerID, b.OwnerID) }),
		Users:    sortedValues(s.users, func(a, b fleet.User) int { return cmp.Compare(a.UserID, b.UserID) }),
		Cars:     sortedValues(s.cars, func(a, b fleet.Car) int { return cmp.Compare(a.CarID, b.CarID) }),
		Bookings: sortedValues(s.bookings, func(a, b fleet.Booking) int { return cmp.Compare(a.BookingID, b.BookingID) }),
	}, nil
}

func (s *MemoryStore) Save(ctx context.Context, changes fleet.ChangeSet, events []fleet.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range changes.Owners {
		s.owners[o.OwnerID] = o
	}
	for _, u := range changes.Users {
		s.users[u.UserID] = u
	}
	for _, c := range changes.Cars {
		s.cars[c.CarID] = c
	}
	for _, id := range changes.DeletedCars {
		delete(s.cars, id)
	}
	for _, b := range changes.Bookings {
		s.bookings[b.BookingID] = b
	}
	for _, id := range changes.DeletedBookings {
		delete(s.bookings, id)
	}
	s.events = append(s.events, events...)
	return nil
}

// Events returns every event saved so far, oldest first.
func (s *MemoryStore) Events() []fleet.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

func sortedValues[K comparable, V any](m map[K]V, cmpFn func(a, b V) int) []V {
	return slices.SortedFunc(maps.Values(m), cmpFn)
}
