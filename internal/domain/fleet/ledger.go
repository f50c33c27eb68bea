package fleet

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Call is what the host supplies for one invocation.
type Call struct {
	Caller   Identity
	Now      uint64
	Attached Amount
}

type Options struct {
	// RequireDrivingLicense rejects user registrations with a blank licence.
	RequireDrivingLicense bool
}

// Ledger owns the four registries. It has no internal locking: the host runs
// one operation at a time against it. Every operation validates fully before
// its first write, so a failed call leaves the ledger untouched.
type Ledger struct {
	owners   map[Identity]Owner
	users    map[Identity]User
	cars     map[string]Car
	bookings map[string]Booking
	opts     Options
}

func New(opts Options) *Ledger {
	return &Ledger{
		owners:   make(map[Identity]Owner),
		users:    make(map[Identity]User),
		cars:     make(map[string]Car),
		bookings: make(map[string]Booking),
		opts:     opts,
	}
}

// Restore rebuilds a ledger from persisted records.
func Restore(opts Options, owners []Owner, users []User, cars []Car, bookings []Booking) *Ledger {
	l := New(opts)
	for _, o := range owners {
		l.owners[o.OwnerID] = o
	}
	for _, u := range users {
		l.users[u.UserID] = u
	}
	for _, c := range cars {
		l.cars[c.CarID] = c
	}
	for _, b := range bookings {
		l.bookings[b.BookingID] = b
	}
	return l
}

// Clone returns an independent copy; records are values so a shallow map copy suffices.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		owners:   maps.Clone(l.owners),
		users:    maps.Clone(l.users),
		cars:     maps.Clone(l.cars),
		bookings: maps.Clone(l.bookings),
		opts:     l.opts,
	}
}

func (l *Ledger) RegisterOwner(_ Call, sink EventSink, ownerID, name string) error {
	if _, exists := l.owners[Identity(ownerID)]; exists {
		return ErrOwnerAlreadyExists
	}
	id, err := ParseIdentity(ownerID)
	if err != nil {
		return err
	}

	l.owners[id] = Owner{OwnerID: id, Name: name}
	sink.Emit(OwnerCreated{OwnerID: id})
	return nil
}

func (l *Ledger) RegisterUser(_ Call, sink EventSink, userID, name, drivingLicense string) error {
	if _, exists := l.users[Identity(userID)]; exists {
		return ErrUserAlreadyExists
	}
	id, err := ParseIdentity(userID)
	if err != nil {
		return err
	}
	if l.opts.RequireDrivingLicense && strings.TrimSpace(drivingLicense) == "" {
		return ErrInvalidDriver
	}

	l.users[id] = User{UserID: id, Name: name, DrivingLicense: drivingLicense}
	sink.Emit(UserCreated{UserID: id})
	return nil
}

func (l *Ledger) IsOwner(id Identity) bool {
	_, ok := l.owners[id]
	return ok
}

func (l *Ledger) IsUser(id Identity) bool {
	_, ok := l.users[id]
	return ok
}

func (l *Ledger) Car(carID string) (Car, error) {
	car, ok := l.cars[carID]
	if !ok {
		return Car{}, ErrCarNotFound
	}
	return car, nil
}

func (l *Ledger) CarAvailability(carID string) (bool, error) {
	car, err := l.Car(carID)
	if err != nil {
		return false, err
	}
	return car.Available, nil
}

// List results are ordered by key so repeated reads are stable.

func (l *Ledger) ListOwnerCars(ownerID Identity) []Car {
	return l.filterCars(func(c Car) bool { return c.OwnerID == ownerID })
}

func (l *Ledger) ListAvailableCars() []Car {
	return l.filterCars(func(c Car) bool { return c.Available })
}

func (l *Ledger) ListUserBookings(userID Identity) []Booking {
	out := make([]Booking, 0)
	for _, b := range l.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b Booking) int { return cmp.Compare(a.BookingID, b.BookingID) })
	return out
}

func (l *Ledger) filterCars(keep func(Car) bool) []Car {
	out := make([]Car, 0)
	for _, c := range l.cars {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Car) int { return cmp.Compare(a.CarID, b.CarID) })
	return out
}
