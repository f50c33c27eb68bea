package errs

import "errors"

// Usecase-level sentinels. Ledger rule violations are fleet errors, not these.
var (
	// Persistence errors
	ErrPersistenceFailed = errors.New("ledger persistence failed")
	ErrStateLoadFailed   = errors.New("ledger state load failed")

	// Host errors
	ErrMissingCaller  = errors.New("caller identity missing")
	ErrInvalidPayment = errors.New("attached payment is not a valid amount")
)
