package storage

import "errors"

var (
	ErrNotFound = errors.New("storage: not found")
	ErrEmptyKey = errors.New("storage: empty key")
	ErrCorrupt  = errors.New("storage: corrupt entry")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
