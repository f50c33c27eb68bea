//go:build unit

package fleet_test

import (
	"testing"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func assertEvents(t *testing.T, want []fleet.Event, got fleet.Events) {
	t.Helper()
	if diff := cmp.Diff(want, []fleet.Event(got)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// assertRejectedTwice runs op twice and expects the same error both times
// with no state change and no events.
func assertRejectedTwice(t *testing.T, l *fleet.Ledger, want error, op func(*fleet.Ledger, fleet.EventSink) error) {
	t.Helper()
	before := l.Clone()
	for range 2 {
		var events fleet.Events
		err := op(l, &events)
		require.ErrorIs(t, err, want)
		assert.Empty(t, events)
		assert.True(t, fleet.Diff(before, l).IsEmpty(), "failed call mutated the ledger")
	}
}

func TestRegistry(t *testing.T) {
	t.Run("register owner and user", func(t *testing.T) {
		l := fleet.New(fleet.Options{})
		var events fleet.Events

		require.NoError(t, l.RegisterOwner(fleet.Call{}, &events, "o1", "John Doe"))
		require.NoError(t, l.RegisterUser(fleet.Call{}, &events, "u1", "Alice", "DL-123456"))

		assert.True(t, l.IsOwner("o1"))
		assert.False(t, l.IsUser("o1"))
		assert.True(t, l.IsUser("u1"))
		assert.False(t, l.IsOwner("u1"))
		assertEvents(t, []fleet.Event{
			fleet.OwnerCreated{OwnerID: "o1"},
			fleet.UserCreated{UserID: "u1"},
		}, events)
	})

	t.Run("one identity may be both owner and user", func(t *testing.T) {
		l := fleet.New(fleet.Options{})
		var events fleet.Events
		require.NoError(t, l.RegisterOwner(fleet.Call{}, &events, "alice", "Alice"))
		require.NoError(t, l.RegisterUser(fleet.Call{}, &events, "alice", "Alice", "DL-1"))
		assert.True(t, l.IsOwner("alice"))
		assert.True(t, l.IsUser("alice"))
	})

	t.Run("error: duplicates", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().Build()
		assertRejectedTwice(t, l, fleet.ErrOwnerAlreadyExists, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RegisterOwner(fleet.Call{}, s, "o1", "Other")
		})
		assertRejectedTwice(t, l, fleet.ErrUserAlreadyExists, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RegisterUser(fleet.Call{}, s, "u1", "Other", "DL-2")
		})
	})

	t.Run("error: invalid identity", func(t *testing.T) {
		l := fleet.New(fleet.Options{})
		assertRejectedTwice(t, l, fleet.ErrInvalidIdentity, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RegisterOwner(fleet.Call{}, s, "Not Valid", "X")
		})
		assertRejectedTwice(t, l, fleet.ErrInvalidIdentity, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RegisterUser(fleet.Call{}, s, "x", "X", "DL")
		})
	})

	t.Run("driving licence policy", func(t *testing.T) {
		var events fleet.Events
		lenient := fleet.New(fleet.Options{})
		require.NoError(t, lenient.RegisterUser(fleet.Call{}, &events, "u1", "Alice", ""))

		strict := fleet.New(fleet.Options{RequireDrivingLicense: true})
		assertRejectedTwice(t, strict, fleet.ErrInvalidDriver, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.RegisterUser(fleet.Call{}, s, "u1", "Alice", "  ")
		})
		require.NoError(t, strict.RegisterUser(fleet.Call{}, &events, "u1", "Alice", "DL-1"))
	})
}

func TestFleetManagement(t *testing.T) {
	t.Run("scenario A: add car", func(t *testing.T) {
		l := builder.NewLedgerBuilder().WithOwner("o1").WithUser("u1").Build()
		var events fleet.Events

		err := l.AddCar(builder.NewCall("o1").Build(), &events, "c1", "o1", uint128.From64(100))
		require.NoError(t, err)

		car, err := l.Car("c1")
		require.NoError(t, err)
		assert.Equal(t, fleet.Car{CarID: "c1", OwnerID: "o1", Available: true, HourlyRate: uint128.From64(100)}, car)
		assertEvents(t, []fleet.Event{fleet.CarAdded{CarID: "c1", Owner: "o1"}}, events)
		assert.Equal(t, []fleet.Car{car}, l.ListAvailableCars())
		assert.Equal(t, []fleet.Car{car}, l.ListOwnerCars("o1"))
	})

	t.Run("any registered owner may list a car for another owner", func(t *testing.T) {
		l := builder.NewLedgerBuilder().WithOwner("o1").WithOwner("o2").Build()
		var events fleet.Events
		require.NoError(t, l.AddCar(builder.NewCall("o2").Build(), &events, "c9", "o1", uint128.From64(5)))
		assert.Len(t, l.ListOwnerCars("o1"), 1)
		assert.Empty(t, l.ListOwnerCars("o2"))
	})

	t.Run("error: add car preconditions", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithOwner("o2").Build()
		cases := []struct {
			name   string
			caller fleet.Identity
			carID  string
			owner  fleet.Identity
			rate   uint64
			errIs  error
		}{
			{name: "caller is not an owner", caller: "u1", carID: "c2", owner: "o1", rate: 10, errIs: fleet.ErrUnauthorized},
			{name: "car id taken", caller: "o1", carID: "c1", owner: "o1", rate: 10, errIs: fleet.ErrCarAlreadyExists},
			{name: "owner unregistered", caller: "o1", carID: "c2", owner: "o3", rate: 10, errIs: fleet.ErrOwnerNotFound},
			{name: "zero rate", caller: "o1", carID: "c2", owner: "o1", rate: 0, errIs: fleet.ErrInvalidRate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assertRejectedTwice(t, l, tc.errIs, func(l *fleet.Ledger, s fleet.EventSink) error {
					return l.AddCar(builder.NewCall(tc.caller).Build(), s, tc.carID, tc.owner, uint128.From64(tc.rate))
				})
			})
		}
	})

	t.Run("delete car by its owner keeps bookings", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithBooking("c1", "u1", t0, t0+hour, 90).Build()
		var events fleet.Events

		require.NoError(t, l.DeleteCar(builder.NewCall("o1").Build(), &events, "c1"))

		_, err := l.Car("c1")
		require.ErrorIs(t, err, fleet.ErrCarNotFound)
		assert.Empty(t, l.ListOwnerCars("o1"))
		assert.Len(t, l.ListUserBookings("u1"), 1, "bookings are not cascaded")
		assertEvents(t, []fleet.Event{fleet.CarDeleted{CarID: "c1"}}, events)
	})

	t.Run("error: delete car is ownership based", func(t *testing.T) {
		l := builder.NewDefaultLedgerBuilder().WithOwner("o2").Build()
		assertRejectedTwice(t, l, fleet.ErrUnauthorized, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.DeleteCar(builder.NewCall("o2").Build(), s, "c1")
		})
		assertRejectedTwice(t, l, fleet.ErrCarNotFound, func(l *fleet.Ledger, s fleet.EventSink) error {
			return l.DeleteCar(builder.NewCall("o2").Build(), s, "missing")
		})
	})
}

func TestQueries(t *testing.T) {
	l := builder.NewDefaultLedgerBuilder().
		WithOwner("o2").
		WithUser("u2").
		WithCar("c3", "o2", 7).
		WithCar("c2", "o1", 5).
		WithBooking("c1", "u1", t0, t0+hour, 90).
		WithBooking("c2", "u1", t0, t0+hour, 5).
		WithBooking("c3", "u2", t0, t0+hour, 7).
		Build()

	t.Run("owner cars sorted by id", func(t *testing.T) {
		cars := l.ListOwnerCars("o1")
		require.Len(t, cars, 2)
		assert.Equal(t, "c1", cars[0].CarID)
		assert.Equal(t, "c2", cars[1].CarID)
	})

	t.Run("user bookings", func(t *testing.T) {
		bookings := l.ListUserBookings("u1")
		require.Len(t, bookings, 2)
		assert.Equal(t, fleet.BookingID("c1", "u1", t0), bookings[0].BookingID)
		assert.Equal(t, uint128.From64(90), bookings[0].Deposit)
		assert.Empty(t, l.ListUserBookings("nobody"))
	})

	t.Run("availability", func(t *testing.T) {
		ok, err := l.CarAvailability("c3")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = l.CarAvailability("c404")
		require.ErrorIs(t, err, fleet.ErrCarNotFound)
		assert.Len(t, l.ListAvailableCars(), 3)
	})
}
