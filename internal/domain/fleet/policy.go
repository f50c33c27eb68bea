package fleet

type Operation string

const (
	OpRegisterOwner Operation = "register_owner"
	OpRegisterUser  Operation = "register_user"
	OpAddCar        Operation = "add_car"
	OpDeleteCar     Operation = "delete_car"
	OpBookCar       Operation = "book_car"
	OpCancelBooking Operation = "cancel_booking"
	OpRentCar       Operation = "rent_car"
	OpReturnCar     Operation = "return_car"
)

// Policy decides whether a caller may run an operation. resource is the
// target key (car ID) for resource-scoped policies and ignored otherwise.
type Policy func(l *Ledger, caller Identity, resource string) bool

// AnyCaller admits everyone. cancel_booking and return_car deliberately use it.
func AnyCaller(_ *Ledger, _ Identity, _ string) bool { return true }

// RegisteredOwner is registry membership: the caller is some owner.
func RegisteredOwner(l *Ledger, caller Identity, _ string) bool { return l.IsOwner(caller) }

// RegisteredUser is registry membership: the caller is some driver.
func RegisteredUser(l *Ledger, caller Identity, _ string) bool { return l.IsUser(caller) }

// CarOwner is resource ownership: the caller is the owner named on the car.
func CarOwner(l *Ledger, caller Identity, carID string) bool {
	car, ok := l.cars[carID]
	return ok && car.OwnerID == caller
}

var policies = map[Operation]Policy{
	OpRegisterOwner: AnyCaller,
	OpRegisterUser:  AnyCaller,
	OpAddCar:        RegisteredOwner,
	OpDeleteCar:     CarOwner,
	OpBookCar:       AnyCaller,
	OpCancelBooking: AnyCaller,
	OpRentCar:       RegisteredUser,
	OpReturnCar:     AnyCaller,
}

// Authorize consults the policy table. Unknown operations are denied.
func (l *Ledger) Authorize(op Operation, caller Identity, resource string) bool {
	p, ok := policies[op]
	if !ok {
		return false
	}
	return p(l, caller, resource)
}
