package fleet

type EventKind string

const (
	EventOwnerCreated     EventKind = "OwnerCreated"
	EventUserCreated      EventKind = "UserCreated"
	EventCarAdded         EventKind = "CarAdded"
	EventCarDeleted       EventKind = "CarDeleted"
	EventCarBooked        EventKind = "CarBooked"
	EventBookingCancelled EventKind = "BookingCancelled"
	EventCarRented        EventKind = "CarRented"
	EventCarReturned      EventKind = "CarReturned"
)

// Event is the closed set of domain events; only the types below implement it.
type Event interface {
	Kind() EventKind
	sealed()
}

// EventSink receives events as operations commit. Emit cannot fail a transition.
type EventSink interface {
	Emit(Event)
}

type EventSinkFunc func(Event)

func (f EventSinkFunc) Emit(e Event) { f(e) }

// Events buffers emitted events in order.
type Events []Event

func (es *Events) Emit(e Event) { *es = append(*es, e) }

type OwnerCreated struct {
	OwnerID Identity
}

type UserCreated struct {
	UserID Identity
}

type CarAdded struct {
	CarID string
	Owner Identity
}

type CarDeleted struct {
	CarID string
}

// CarBooked carries the required deposit, not the tendered one.
type CarBooked struct {
	CarID     string
	User      Identity
	StartTime uint64
	EndTime   uint64
	Deposit   Amount
}

// BookingCancelled is emitted both on explicit cancellation and when a
// return closes the active booking.
type BookingCancelled struct {
	BookingID       string
	User            Identity
	DepositRetained Amount
}

type CarRented struct {
	CarID    string
	User     Identity
	Duration uint32
}

type CarReturned struct {
	CarID string
}

func (OwnerCreated) Kind() EventKind     { return EventOwnerCreated }
func (UserCreated) Kind() EventKind      { return EventUserCreated }
func (CarAdded) Kind() EventKind         { return EventCarAdded }
func (CarDeleted) Kind() EventKind       { return EventCarDeleted }
func (CarBooked) Kind() EventKind        { return EventCarBooked }
func (BookingCancelled) Kind() EventKind { return EventBookingCancelled }
func (CarRented) Kind() EventKind        { return EventCarRented }
func (CarReturned) Kind() EventKind      { return EventCarReturned }

func (OwnerCreated) sealed()     {}
func (UserCreated) sealed()      {}
func (CarAdded) sealed()         {}
func (CarDeleted) sealed()       {}
func (CarBooked) sealed()        {}
func (BookingCancelled) sealed() {}
func (CarRented) sealed()        {}
func (CarReturned) sealed()      {}
