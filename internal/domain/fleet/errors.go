package fleet

import "errors"

// ErrorKind names one of the closed set of ledger failures.
type ErrorKind string

const (
	KindOwnerAlreadyExists  ErrorKind = "OwnerAlreadyExists"
	KindUserAlreadyExists   ErrorKind = "UserAlreadyExists"
	KindCarAlreadyExists    ErrorKind = "CarAlreadyExists"
	KindOwnerNotFound       ErrorKind = "OwnerNotFound"
	KindUserNotFound        ErrorKind = "UserNotFound"
	KindCarNotFound         ErrorKind = "CarNotFound"
	KindCarNotAvailable     ErrorKind = "CarNotAvailable"
	KindInsufficientDeposit ErrorKind = "InsufficientDeposit"
	KindInsufficientPayment ErrorKind = "InsufficientPayment"
	KindUnauthorized        ErrorKind = "Unauthorized"
	KindInvalidDriver       ErrorKind = "InvalidDriver"
	KindInvalidRate         ErrorKind = "InvalidRate"
	KindInvalidInterval     ErrorKind = "InvalidInterval"
	KindBookingNotFound     ErrorKind = "BookingNotFound"
	KindInvalidIdentity     ErrorKind = "InvalidIdentity"
)

// Error is a ledger failure. Every value is one of the package-level sentinels,
// so callers compare with errors.Is.
type Error struct {
	kind ErrorKind
	msg  string
}

func (e *Error) Error() string   { return e.msg }
func (e *Error) Kind() ErrorKind { return e.kind }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

var (
	ErrOwnerAlreadyExists  = newError(KindOwnerAlreadyExists, "owner already exists")
	ErrUserAlreadyExists   = newError(KindUserAlreadyExists, "user already exists")
	ErrCarAlreadyExists    = newError(KindCarAlreadyExists, "car already exists")
	ErrOwnerNotFound       = newError(KindOwnerNotFound, "owner not found")
	ErrUserNotFound        = newError(KindUserNotFound, "user not found")
	ErrCarNotFound         = newError(KindCarNotFound, "car not found")
	ErrCarNotAvailable     = newError(KindCarNotAvailable, "car not available")
	ErrInsufficientDeposit = newError(KindInsufficientDeposit, "insufficient deposit")
	ErrInsufficientPayment = newError(KindInsufficientPayment, "insufficient payment")
	ErrUnauthorized        = newError(KindUnauthorized, "unauthorized")
	ErrInvalidDriver       = newError(KindInvalidDriver, "invalid driver")
	ErrInvalidRate         = newError(KindInvalidRate, "invalid hourly rate")
	ErrInvalidInterval     = newError(KindInvalidInterval, "invalid booking interval")
	ErrBookingNotFound     = newError(KindBookingNotFound, "booking not found")
	ErrInvalidIdentity     = newError(KindInvalidIdentity, "invalid identity")
)

// KindOf reports the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return "", false
}
