package fleet

import "strconv"

type Owner struct {
	OwnerID Identity
	Name    string
}

// User is a registered driver.
type User struct {
	UserID         Identity
	Name           string
	DrivingLicense string
}

// Car references its owner by identity only; Available is the rental state
// discriminant (true = Available, false = Rented/Reserved).
type Car struct {
	CarID      string
	OwnerID    Identity
	Available  bool
	HourlyRate Amount
}

// Booking holds the deposit the caller actually paid, which may exceed the
// required minimum.
type Booking struct {
	BookingID string
	CarID     string
	UserID    Identity
	StartTime uint64
	EndTime   uint64
	Deposit   Amount
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// BookingID is car-user-start. Car IDs and identities may contain '-', so
// bookings on different cars can still map to the same ID; BookCar refuses
// a booking whose ID is already taken.
func BookingID(carID string, userID Identity, start uint64) string {
	return carID + "-" + string(userID) + "-" + strconv.FormatUint(start, 10)
}
