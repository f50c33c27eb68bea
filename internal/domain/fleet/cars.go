package fleet

func (l *Ledger) AddCar(call Call, sink EventSink, carID string, ownerID Identity, hourlyRate Amount) error {
	if !l.Authorize(OpAddCar, call.Caller, carID) {
		return ErrUnauthorized
	}
	if _, exists := l.cars[carID]; exists {
		return ErrCarAlreadyExists
	}
	if !l.IsOwner(ownerID) {
		return ErrOwnerNotFound
	}
	if hourlyRate.IsZero() {
		return ErrInvalidRate
	}

	l.cars[carID] = Car{
		CarID:      carID,
		OwnerID:    ownerID,
		Available:  true,
		HourlyRate: hourlyRate,
	}
	sink.Emit(CarAdded{CarID: carID, Owner: ownerID})
	return nil
}

// DeleteCar leaves bookings that reference the car in place.
func (l *Ledger) DeleteCar(call Call, sink EventSink, carID string) error {
	if _, exists := l.cars[carID]; !exists {
		return ErrCarNotFound
	}
	if !l.Authorize(OpDeleteCar, call.Caller, carID) {
		return ErrUnauthorized
	}

	delete(l.cars, carID)
	sink.Emit(CarDeleted{CarID: carID})
	return nil
}
