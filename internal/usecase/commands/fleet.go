package commands

import (
	"context"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/pkg/clock"
	"fleet-ledger/internal/pkg/errs"
	"fleet-ledger/internal/usecase/shared"
)

// Caller is what the transport knows about an invocation. The timestamp
// comes from the host clock, not the caller.
type Caller struct {
	Identity fleet.Identity
	Attached fleet.Amount
}

type AddCarRequest struct {
	CarID      string
	OwnerID    fleet.Identity
	HourlyRate fleet.Amount
}

type BookCarRequest struct {
	CarID     string
	UserID    fleet.Identity
	StartTime uint64
	EndTime   uint64
	Deposit   fleet.Amount
}

type RentCarRequest struct {
	CarID         string
	UserID        fleet.Identity
	DurationHours uint32
}

//go:generate mockgen -source=fleet.go -destination=../../../tests/mock/commands/fleet_mock.go -package=commandsmock

// FleetCommands returns the events a successful call emitted, in order.
type FleetCommands interface {
	RegisterOwner(ctx context.Context, caller Caller, ownerID, name string) ([]fleet.Event, error)
	RegisterUser(ctx context.Context, caller Caller, userID, name, drivingLicense string) ([]fleet.Event, error)
	AddCar(ctx context.Context, caller Caller, req AddCarRequest) ([]fleet.Event, error)
	DeleteCar(ctx context.Context, caller Caller, carID string) ([]fleet.Event, error)
	BookCar(ctx context.Context, caller Caller, req BookCarRequest) ([]fleet.Event, error)
	CancelBooking(ctx context.Context, caller Caller, bookingID string) ([]fleet.Event, error)
	RentCar(ctx context.Context, caller Caller, req RentCarRequest) ([]fleet.Event, error)
	ReturnCar(ctx context.Context, caller Caller, carID string) ([]fleet.Event, error)
}

type fleetCommandsImpl struct {
	state     *shared.LedgerState
	store     shared.LedgerStore
	clock     *clock.Monotonic
	publisher shared.EventPublisher
}

func NewFleetCommands(state *shared.LedgerState, store shared.LedgerStore, clk *clock.Monotonic, publisher shared.EventPublisher) FleetCommands {
	return &fleetCommandsImpl{
		state:     state,
		store:     store,
		clock:     clk,
		publisher: publisher,
	}
}

type ledgerOp func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error

// execute runs op on a draft and persists its change set with its events
// before the draft goes live. A store failure leaves the ledger as it was.
func (uc *fleetCommandsImpl) execute(ctx context.Context, caller Caller, op ledgerOp) ([]fleet.Event, error) {
	var events fleet.Events
	err := uc.state.Mutate(
		func(draft *fleet.Ledger) error {
			call := fleet.Call{
				Caller:   caller.Identity,
				Now:      uc.clock.NowNanos(),
				Attached: caller.Attached,
			}
			return op(draft, call, &events)
		},
		func(changes fleet.ChangeSet) error {
			if err := uc.store.Save(ctx, changes, events); err != nil {
				return errs.Mark(errs.Wrap(err, "save ledger changes"), errs.ErrPersistenceFailed)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, events)
	return events, nil
}

func (uc *fleetCommandsImpl) RegisterOwner(ctx context.Context, caller Caller, ownerID, name string) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.RegisterOwner(call, sink, ownerID, name)
	})
}

func (uc *fleetCommandsImpl) RegisterUser(ctx context.Context, caller Caller, userID, name, drivingLicense string) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.RegisterUser(call, sink, userID, name, drivingLicense)
	})
}

func (uc *fleetCommandsImpl) AddCar(ctx context.Context, caller Caller, req AddCarRequest) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.AddCar(call, sink, req.CarID, req.OwnerID, req.HourlyRate)
	})
}

func (uc *fleetCommandsImpl) DeleteCar(ctx context.Context, caller Caller, carID string) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.DeleteCar(call, sink, carID)
	})
}

func (uc *fleetCommandsImpl) BookCar(ctx context.Context, caller Caller, req BookCarRequest) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.BookCar(call, sink, req.CarID, req.UserID, req.StartTime, req.EndTime, req.Deposit)
	})
}

func (uc *fleetCommandsImpl) CancelBooking(ctx context.Context, caller Caller, bookingID string) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.CancelBooking(call, sink, bookingID)
	})
}

func (uc *fleetCommandsImpl) RentCar(ctx context.Context, caller Caller, req RentCarRequest) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.RentCar(call, sink, req.CarID, req.UserID, req.DurationHours)
	})
}

func (uc *fleetCommandsImpl) ReturnCar(ctx context.Context, caller Caller, carID string) ([]fleet.Event, error) {
	return uc.execute(ctx, caller, func(l *fleet.Ledger, call fleet.Call, sink fleet.EventSink) error {
		return l.ReturnCar(call, sink, carID)
	})
}
