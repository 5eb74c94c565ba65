package scheduling

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to collaborators. None of these are retried inside
// the engine; SlotUnavailable in particular must reach the user so they can
// re-query and pick again.
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBlockedDateNotFound = errors.New("blocked date not found")
	ErrSlotUnavailable     = errors.New("slot no longer available")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrInvalidTimeFormat   = errors.New("invalid time format, expected HH:mm")
)

// InvalidInputError reports malformed or out-of-policy request data.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is an input-validation failure.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie) || errors.Is(err, ErrInvalidTimeFormat)
}

// StorageError wraps a persistence-layer failure. The engine never retries
// these; retry policy belongs to the collaborator wrapping the storage client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
