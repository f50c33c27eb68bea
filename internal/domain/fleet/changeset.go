package fleet

import (
	"cmp"
	"slices"
)

// ChangeSet lists the records one committed operation wrote or removed.
type ChangeSet struct {
	Owners          []Owner
	Users           []User
	Cars            []Car
	DeletedCars     []string
	Bookings        []Booking
	DeletedBookings []string
}

func (cs ChangeSet) IsEmpty() bool {
	return len(cs.Owners) == 0 && len(cs.Users) == 0 &&
		len(cs.Cars) == 0 && len(cs.DeletedCars) == 0 &&
		len(cs.Bookings) == 0 && len(cs.DeletedBookings) == 0
}

// Diff computes what differs in after compared to before.
func Diff(before, after *Ledger) ChangeSet {
	var cs ChangeSet
	cs.Owners = upserted(before.owners, after.owners)
	cs.Users = upserted(before.users, after.users)
	cs.Cars = upserted(before.cars, after.cars)
	cs.DeletedCars = removed(before.cars, after.cars)
	cs.Bookings = upserted(before.bookings, after.bookings)
	cs.DeletedBookings = removed(before.bookings, after.bookings)

	slices.SortFunc(cs.Owners, func(a, b Owner) int { return cmp.Compare(a.OwnerID, b.OwnerID) })
	slices.SortFunc(cs.Users, func(a, b User) int { return cmp.Compare(a.UserID, b.UserID) })
	slices.SortFunc(cs.Cars, func(a, b Car) int { return cmp.Compare(a.CarID, b.CarID) })
	slices.SortFunc(cs.Bookings, func(a, b Booking) int { return cmp.Compare(a.BookingID, b.BookingID) })
	slices.Sort(cs.DeletedCars)
	slices.Sort(cs.DeletedBookings)
	return cs
}

func upserted[K comparable, V comparable](before, after map[K]V) []V {
	var out []V
	for k, v := range after {
		if old, ok := before[k]; !ok || old != v {
			out = append(out, v)
		}
	}
	return out
}

func removed[K ~string, V any](before, after map[K]V) []string {
	var out []string
	for k := range before {
		if _, ok := after[k]; !ok {
			out = append(out, string(k))
		}
	}
	return out
}
