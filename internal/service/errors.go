package service

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP statuses; services wrap
// them with context via %w so callers can still match with errors.Is. All of
// them are recoverable: a rejected operation never corrupts the stores.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
)

func notFound(kind, code string) error {
	return fmt.Errorf("%s %s: %w", kind, code, ErrNotFound)
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}
