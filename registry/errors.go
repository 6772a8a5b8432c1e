package registry

import "errors"

var (
	// ErrUnauthorized is returned when the caller is neither the owner of
	// the target label nor an operator for that owner.
	ErrUnauthorized = errors.New("registry: caller not authorized")

	// ErrDuplicateRegistration is returned when a label is already claimed.
	ErrDuplicateRegistration = errors.New("registry: label already registered")

	// ErrLengthMismatch is returned when a batch operation's parallel
	// arguments differ in length.
	ErrLengthMismatch = errors.New("registry: argument length mismatch")

	// ErrInvalidLabel is returned for a label that cannot be registered
	// (empty, or containing the name separator).
	ErrInvalidLabel = errors.New("registry: invalid label")
)

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicateRegistration) }
