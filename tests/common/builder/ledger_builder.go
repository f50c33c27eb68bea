//go:build unit || e2e

package builder

import (
	"fleet-ledger/internal/domain/fleet"

	"lukechampine.com/uint128"
)

const (
	DefaultOwner fleet.Identity = "o1"
	DefaultUser  fleet.Identity = "u1"
	DefaultCar                  = "c1"
	DefaultRate  uint64         = 100
)

// LedgerBuilder seeds a ledger through its public operations, so a seeded
// ledger obeys the same invariants as one built by real calls.
type LedgerBuilder struct {
	opts     fleet.Options
	owners   []fleet.Owner
	users    []fleet.User
	cars     []fleet.Car
	bookings []fleet.Booking
}

func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{}
}

// NewDefaultLedgerBuilder has owner o1, user u1 and car c1 at 100 per hour.
func NewDefaultLedgerBuilder() *LedgerBuilder {
	return NewLedgerBuilder().
		WithOwner(DefaultOwner).
		WithUser(DefaultUser).
		WithCar(DefaultCar, DefaultOwner, DefaultRate)
}

func (b *LedgerBuilder) With(mutate func(*LedgerBuilder)) *LedgerBuilder {
	mutate(b)
	return b
}

func (b *LedgerBuilder) WithOptions(opts fleet.Options) *LedgerBuilder {
	b.opts = opts
	return b
}

func (b *LedgerBuilder) WithOwner(id fleet.Identity) *LedgerBuilder {
	b.owners = append(b.owners, fleet.Owner{OwnerID: id, Name: "Owner " + id.String()})
	return b
}

func (b *LedgerBuilder) WithUser(id fleet.Identity) *LedgerBuilder {
	b.users = append(b.users, fleet.User{UserID: id, Name: "Driver " + id.String(), DrivingLicense: "DL-" + id.String()})
	return b
}

func (b *LedgerBuilder) WithCar(carID string, owner fleet.Identity, rate uint64) *LedgerBuilder {
	b.cars = append(b.cars, fleet.Car{CarID: carID, OwnerID: owner, Available: true, HourlyRate: uint128.From64(rate)})
	return b
}

func (b *LedgerBuilder) WithBooking(carID string, user fleet.Identity, start, end, deposit uint64) *LedgerBuilder {
	b.bookings = append(b.bookings, fleet.Booking{
		BookingID: fleet.BookingID(carID, user, start),
		CarID:     carID,
		UserID:    user,
		StartTime: start,
		EndTime:   end,
		Deposit:   uint128.From64(deposit),
	})
	return b
}

// Build panics on a seed the ledger rejects; seeds are test fixtures.
func (b *LedgerBuilder) Build() *fleet.Ledger {
	l := fleet.New(b.opts)
	var discard fleet.Events
	for _, o := range b.owners {
		must(l.RegisterOwner(fleet.Call{Caller: o.OwnerID}, &discard, o.OwnerID.String(), o.Name))
	}
	for _, u := range b.users {
		must(l.RegisterUser(fleet.Call{Caller: u.UserID}, &discard, u.UserID.String(), u.Name, u.DrivingLicense))
	}
	for _, c := range b.cars {
		must(l.AddCar(fleet.Call{Caller: c.OwnerID}, &discard, c.CarID, c.OwnerID, c.HourlyRate))
	}
	for _, bk := range b.bookings {
		must(l.BookCar(fleet.Call{Caller: bk.UserID}, &discard, bk.CarID, bk.UserID, bk.StartTime, bk.EndTime, bk.Deposit))
	}
	return l
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Call builds host call context.
type CallBuilder struct {
	call fleet.Call
}

func NewCall(caller fleet.Identity) *CallBuilder {
	return &CallBuilder{call: fleet.Call{Caller: caller}}
}

func (c *CallBuilder) At(now uint64) *CallBuilder {
	c.call.Now = now
	return c
}

func (c *CallBuilder) Paying(amount uint64) *CallBuilder {
	c.call.Attached = uint128.From64(amount)
	return c
}

func (c *CallBuilder) Build() fleet.Call {
	return c.call
}
