// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"beautybar/models"
)

// ErrConflict is returned by CreateIfSlotFree when another non-cancelled
// booking already occupies an overlapping range for the same service.
var ErrConflict = errors.New("booking: conflicting booking exists")

// ErrNotFound is returned when a booking id does not match any document.
var ErrNotFound = errors.New("booking: not found")

// BookingRepository is the booking ledger. Bookings are never deleted, only
// status-transitioned.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)

	// ListOverlapping returns non-cancelled bookings for the service whose
	// [start,end) range overlaps [from,to) under half-open semantics.
	ListOverlapping(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error)

	// CountForServicesInRange counts non-cancelled bookings across the given
	// services whose range overlaps [from,to). Used for per-day booking caps.
	CountForServicesInRange(ctx context.Context, serviceIDs []string, from, to time.Time) (int64, error)

	// CreateIfSlotFree atomically re-checks for overlapping non-cancelled
	// bookings and inserts. Returns ErrConflict if the slot is taken.
	CreateIfSlotFree(ctx context.Context, booking *models.Booking) error

	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
