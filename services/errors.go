package services

import "errors"

// Error kinds returned by the domain services. Controllers match these
// with errors.Is and translate them to HTTP statuses; services guarantee
// state is unchanged (or rolled back) when one of these is returned.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized marks a caller lacking ownership or role for the
	// target entity.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrConflict marks an entity that is not in the required state for
	// the requested transition.
	ErrConflict = errors.New("conflict")

	// ErrOutOfStock marks an asset with no available quantity left.
	ErrOutOfStock = errors.New("out of stock")

	// ErrLimitExceeded marks an HR that has reached their package's
	// employee limit.
	ErrLimitExceeded = errors.New("employee limit exceeded")
)
