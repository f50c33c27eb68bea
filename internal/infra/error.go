package infra

import (
	"errors"
	"log/slog"

	"fleet-ledger/internal/pkg/errs"
)

type RepositoryErrorKind string

// RepositoryError tells the usecase layer what class of store failure
// happened without leaking driver types.
type RepositoryError struct {
	Kind RepositoryErrorKind
	Op   string
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	prefix := string(e.Kind) + ": " + e.Op + ": "
	if e.err != nil {
		// err already carries msg
		return prefix + e.err.Error()
	}
	return prefix + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(logger *slog.Logger, kind RepositoryErrorKind, op, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("op", op),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	logger.Error("repository error: "+msg, logArgs...)

	return RepositoryError{Kind: kind, Op: op, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCorruptRecord      RepositoryErrorKind = "CORRUPT_RECORD"
	KindEncoding           RepositoryErrorKind = "ENCODING"
)
