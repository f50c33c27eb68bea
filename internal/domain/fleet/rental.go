package fleet

// RentCar is an immediate rental from now for hours. Unlike BookCar it needs
// the full fee attached; the attached amount becomes the booking's deposit.
func (l *Ledger) RentCar(call Call, sink EventSink, carID string, userID Identity, hours uint32) error {
	if !l.Authorize(OpRentCar, call.Caller, carID) {
		return ErrInvalidDriver
	}
	car, ok := l.cars[carID]
	if !ok {
		return ErrCarNotFound
	}
	fee, err := RentalFee(uint64(hours), car.HourlyRate)
	if err != nil {
		return err
	}
	if call.Attached.Cmp(fee) < 0 {
		return ErrInsufficientPayment
	}
	if !car.Available {
		return ErrCarNotAvailable
	}
	if !l.IsUser(userID) {
		return ErrUserNotFound
	}
	iv, err := IntervalFromNow(call.Now, hours)
	if err != nil {
		return err
	}

	// last fallible step: nothing is written unless the booking succeeds
	if err := l.BookCar(call, sink, carID, userID, iv.Start, iv.End, call.Attached); err != nil {
		return err
	}
	car.Available = false
	l.cars[carID] = car

	sink.Emit(CarRented{CarID: carID, User: userID, Duration: hours})
	return nil
}

// ReturnCar makes the car available whatever its state and closes the
// booking covering now, if there is one.
func (l *Ledger) ReturnCar(call Call, sink EventSink, carID string) error {
	if !l.Authorize(OpReturnCar, call.Caller, carID) {
		return ErrUnauthorized
	}
	car, ok := l.cars[carID]
	if !ok {
		return ErrCarNotFound
	}

	car.Available = true
	l.cars[carID] = car

	if b, found := l.activeBooking(carID, call.Now); found {
		delete(l.bookings, b.BookingID)
		sink.Emit(BookingCancelled{
			BookingID:       b.BookingID,
			User:            b.UserID,
			DepositRetained: b.Deposit,
		})
	}
	sink.Emit(CarReturned{CarID: carID})
	return nil
}
