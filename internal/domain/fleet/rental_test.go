//go:build unit

package fleet_test

import (
	"testing"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestRentCar(t *testing.T) {
	t.Run("success: books now through now+duration and marks car rented", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		var events fleet.Events

		err := l.RentCar(builder.NewCall("u1").At(t0).Paying(250).Build(), &events, "c1", "u1", 2)
		require.NoError(t, err)

		car, err := l.Car("c1")
		require.NoError(t, err)
		assert.False(t, car.Available)
		assert.Empty(t, l.ListAvailableCars())

		bookings := l.ListUserBookings("u1")
		require.Len(t, bookings, 1)
		assert.Equal(t, t0, bookings[0].StartTime)
		assert.Equal(t, t0+2*hour, bookings[0].EndTime)
		assert.Equal(t, uint128.From64(250), bookings[0].Deposit, "full attached payment is stored")

		assertEvents(t, []fleet.Event{
			fleet.CarBooked{CarID: "c1", User: "u1", StartTime: t0, EndTime: t0 + 2*hour, Deposit: uint128.From64(180)},
			fleet.CarRented{CarID: "c1", User: "u1", Duration: 2},
		}, events)
	})

	t.Run("scenario C: insufficient payment", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		assertRejectedTwice(t, l, fleet.ErrInsufficientPayment, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RentCar(builder.NewCall("u1").At(t0).Paying(99).Build(), s, "c1", "u1", 1)
		})
		available, err := l.CarAvailability("c1")
		require.NoError(t, err)
		assert.True(t, available)
		assert.Empty(t, l.ListUserBookings("u1"))
	})

	t.Run("error: mid-reservation car cannot be rented", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithBooking("c1", "u1", t0, t0+2*hour, 180).Build()
		assertRejectedTwice(t, l, fleet.ErrCarNotAvailable, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RentCar(builder.NewCall("u1").At(t0+hour).Paying(100).Build(), s, "c1", "u1", 1)
		})
	})

	t.Run("error: preconditions", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithUser("u2").Build()
		var events fleet.Events
		require.NoError(t, l.RentCar(builder.NewCall("u2").At(t0).Paying(100).Build(), &events, "c1", "u2", 1))
		l2 := builder.NewDefaultLedgerBuilder().Build()

		cases := []struct {
			name   string
			ledger *fleet.Ledger
			call   fleet.Call
			carID  string
			user   fleet.Identity
			hours  uint32
			errIs  error
		}{
			{name: "caller is not a driver", ledger: l2, call: builder.NewCall("o1").At(t0).Paying(100).Build(), carID: "c1", user: "u1", hours: 1, errIs: fleet.ErrInvalidDriver},
			{name: "missing car", ledger: l2, call: builder.NewCall("u1").At(t0).Paying(100).Build(), carID: "c404", user: "u1", hours: 1, errIs: fleet.ErrCarNotFound},
			{name: "already rented", ledger: l, call: builder.NewCall("u1").At(t0 + 5*hour).Paying(100).Build(), carID: "c1", user: "u1", hours: 1, errIs: fleet.ErrCarNotAvailable},
			{name: "renting for an unregistered user", ledger: l2, call: builder.NewCall("u1").At(t0).Paying(100).Build(), carID: "c1", user: "u404", hours: 1, errIs: fleet.ErrUserNotFound},
			{name: "zero duration", ledger: l2, call: builder.NewCall("u1").At(t0).Build(), carID: "c1", user: "u1", hours: 0, errIs: fleet.ErrInvalidInterval},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assertRejectedTwice(t, tc.ledger, tc.errIs, func(l *fleet.Ledger, s fleet.EventSink) error {
					return l.RentCar(tc.call, s, tc.carID, tc.user, tc.hours)
				})
			})
		}
	})
}

func TestReturnCar(t *testing.T) {
	t.Run("closes the active rental at its inclusive end", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		var events fleet.Events
		require.NoError(t, l.RentCar(builder.NewCall("u1").At(t0).Paying(100).Build(), &events, "c1", "u1", 1))

		events = nil
		require.NoError(t, l.ReturnCar(builder.NewCall("u1").At(t0+hour).Build(), &events, "c1"))

		available, err := l.CarAvailability("c1")
		require.NoError(t, err)
		assert.True(t, available)
		assert.Empty(t, l.ListUserBookings("u1"))
		assertEvents(t, []fleet.Event{
			fleet.BookingCancelled{BookingID: fleet.BookingID("c1", "u1", t0), User: "u1", DepositRetained: uint128.From64(100)},
			fleet.CarReturned{CarID: "c1"},
		}, events)
	})

	t.Run("scenario E: no booking in window", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithBooking("c1", "u1", t0, t0+hour, 90).Build()
		var events fleet.Events

		require.NoError(t, l.ReturnCar(builder.NewCall("o1").At(t0+hour+1).Build(), &events, "c1"))

		assertEvents(t, []fleet.Event{fleet.CarReturned{CarID: "c1"}}, events)
		assert.Len(t, l.ListUserBookings("u1"), 1)
		assert.Len(t, l.ListAvailableCars(), 1)
	})

	t.Run("late return keeps the booking", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		var events fleet.Events
		require.NoError(t, l.RentCar(builder.NewCall("u1").At(t0).Paying(100).Build(), &events, "c1", "u1", 1))

		events = nil
		require.NoError(t, l.ReturnCar(fleet.Call{Now: t0 + 2*hour}, &events, "c1"))
		assertEvents(t, []fleet.Event{fleet.CarReturned{CarID: "c1"}}, events)
		assert.Len(t, l.ListUserBookings("u1"), 1)
		assert.Len(t, l.ListAvailableCars(), 1)
	})

	t.Run("back-to-back bookings close the earlier one", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithUser("u2").
			WithBooking("c1", "u2", t0+hour, t0+2*hour, 90).
			WithBooking("c1", "u1", t0, t0+hour, 90).
			Build()
		var events fleet.Events

		require.NoError(t, l.ReturnCar(fleet.Call{Now: t0 + hour}, &events, "c1"))

		assert.Empty(t, l.ListUserBookings("u1"))
		assert.Len(t, l.ListUserBookings("u2"), 1)
	})

	t.Run("error: missing car", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		assertRejectedTwice(t, l, fleet.ErrCarNotFound, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.ReturnCar(fleet.Call{Now: t0}, s, "c404")
		})
	})
}
