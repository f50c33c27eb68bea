package fleet

import (
	"cmp"
	"slices"
)

// BookCar reserves [start, end) on a car for a registered driver. tendered is stored on
// the booking as paid; the event reports the required minimum.
func (l *Ledger) BookCar(call Call, sink EventSink, carID string, userID Identity, start, end uint64, tendered Amount) error {
	if !l.Authorize(OpBookCar, call.Caller, carID) {
		return ErrUnauthorized
	}
	if !l.IsUser(userID) {
		return ErrInvalidDriver
	}
	car, ok := l.cars[carID]
	if !ok {
		return ErrCarNotFound
	}
	iv, err := NewInterval(start, end)
	if err != nil {
		return err
	}
	id := BookingID(carID, userID, iv.Start)
	if _, taken := l.bookings[id]; taken || !car.Available || l.isBooked(carID, iv) {
		return ErrCarNotAvailable
	}
	fee, err := RentalFee(iv.Hours(), car.HourlyRate)
	if err != nil {
		return err
	}
	required := RequiredDeposit(fee)
	if tendered.Cmp(required) < 0 {
		return ErrInsufficientDeposit
	}

	l.bookings[id] = Booking{
		BookingID: id,
		CarID:     carID,
		UserID:    userID,
		StartTime: iv.Start,
		EndTime:   iv.End,
		Deposit:   tendered,
	}
	sink.Emit(CarBooked{
		CarID:     carID,
		User:      userID,
		StartTime: iv.Start,
		EndTime:   iv.End,
		Deposit:   required,
	})
	return nil
}

// CancelBooking removes any booking for any caller. The deposit is forfeited.
func (l *Ledger) CancelBooking(call Call, sink EventSink, bookingID string) error {
	if !l.Authorize(OpCancelBooking, call.Caller, bookingID) {
		return ErrUnauthorized
	}
	b, ok := l.bookings[bookingID]
	if !ok {
		return ErrBookingNotFound
	}

	delete(l.bookings, bookingID)
	sink.Emit(BookingCancelled{
		BookingID:       bookingID,
		User:            b.UserID,
		DepositRetained: b.Deposit,
	})
	return nil
}

func (l *Ledger) isBooked(carID string, iv Interval) bool {
	for _, b := range l.bookings {
		if b.CarID == carID && iv.Overlaps(b.Interval()) {
			return true
		}
	}
	return false
}

// activeBooking finds the booking on carID covering now, ends inclusive.
// Back-to-back bookings can both cover their shared instant; the earlier one wins.
func (l *Ledger) activeBooking(carID string, now uint64) (Booking, bool) {
	var found []Booking
	for _, b := range l.bookings {
		if b.CarID == carID && b.Interval().Covers(now) {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return Booking{}, false
	}
	return slices.MinFunc(found, func(a, b Booking) int {
		if c := cmp.Compare(a.StartTime, b.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.BookingID, b.BookingID)
	}), true
}
