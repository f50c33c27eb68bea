package queries

import (
	"context"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/shared"
)

//go:generate mockgen -source=fleet.go -destination=../../../tests/mock/queries/fleet_mock.go -package=queriesmock

// FleetQueries never changes state. List results are sorted by key.
type FleetQueries interface {
	Identity(ctx context.Context, id fleet.Identity) (IdentityView, error)
	ListOwnerCars(ctx context.Context, ownerID fleet.Identity) ([]fleet.Car, error)
	ListAvailableCars(ctx context.Context) ([]fleet.Car, error)
	ListUserBookings(ctx context.Context, userID fleet.Identity) ([]fleet.Booking, error)
	GetCar(ctx context.Context, carID string) (fleet.Car, error)
	CarAvailability(ctx context.Context, carID string) (bool, error)
}

type fleetQueriesImpl struct {
	state *shared.LedgerState
}

func NewFleetQueries(state *shared.LedgerState) FleetQueries {
	return &fleetQueriesImpl{state: state}
}

func (q *fleetQueriesImpl) Identity(_ context.Context, id fleet.Identity) (IdentityView, error) {
	view := IdentityView{ID: id}
	q.state.Read(func(l *fleet.Ledger) {
		view.IsOwner = l.IsOwner(id)
		view.IsUser = l.IsUser(id)
	})
	return view, nil
}

func (q *fleetQueriesImpl) ListOwnerCars(_ context.Context, ownerID fleet.Identity) ([]fleet.Car, error) {
	var cars []fleet.Car
	q.state.Read(func(l *fleet.Ledger) { cars = l.ListOwnerCars(ownerID) })
	return cars, nil
}

func (q *fleetQueriesImpl) ListAvailableCars(_ context.Context) ([]fleet.Car, error) {
	var cars []fleet.Car
	q.state.Read(func(l *fleet.Ledger) { cars = l.ListAvailableCars() })
	return cars, nil
}

func (q *fleetQueriesImpl) ListUserBookings(_ context.Context, userID fleet.Identity) ([]fleet.Booking, error) {
	var bookings []fleet.Booking
	q.state.Read(func(l *fleet.Ledger) { bookings = l.ListUserBookings(userID) })
	return bookings, nil
}

func (q *fleetQueriesImpl) GetCar(_ context.Context, carID string) (fleet.Car, error) {
	var (
		car fleet.Car
		err error
	)
	q.state.Read(func(l *fleet.Ledger) { car, err = l.Car(carID) })
	return car, err
}

func (q *fleetQueriesImpl) CarAvailability(_ context.Context, carID string) (bool, error) {
	var (
		available bool
		err       error
	)
	q.state.Read(func(l *fleet.Ledger) { available, err = l.CarAvailability(carID) })
	return available, err
}
