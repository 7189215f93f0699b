package services

import "github.com/cockroachdb/errors"

// Error classes for the booking engine. Callers classify failures with
// errors.Is against these sentinels; the HTTP layer maps each class to a
// status code.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrResourceExhausted  = errors.New("resource exhausted")
)

// failf attaches a detailed message to one of the sentinel classes. The
// class stays in the cause chain, so errors.Is keeps working on the result.
func failf(class error, format string, args ...any) error {
	return errors.Wrapf(class, format, args...)
}
