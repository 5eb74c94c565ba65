package scheduling

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "beautybar/database/repository/booking"
	"beautybar/models"
)

// legalTransitions enumerates the only permitted status moves. There is no
// path back to pending, and cancelled is terminal.
var legalTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCancelled},
}

// TransitionBooking moves a booking to confirmed or cancelled. Cancelling
// frees the slot for future availability queries, since cancelled bookings are
// excluded from every overlap check. Bookings are never deleted.
func (se *DefaultSchedulingEngine) TransitionBooking(ctx context.Context, bookingID, newStatus string) (*models.Booking, error) {
	if newStatus != models.BookingStatusConfirmed && newStatus != models.BookingStatusCancelled {
		return nil, fmt.Errorf("target status %q: %w", newStatus, ErrInvalidTransition)
	}

	booking, err := se.Ledger.GetByID(ctx, bookingID)
	if err != nil {
		return nil, storageErr("booking lookup", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	allowed := false
	for _, next := range legalTransitions[booking.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, newStatus, ErrInvalidTransition)
	}

	updated, err := se.Ledger.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
		}
		return nil, storageErr("booking status update", err)
	}

	if se.Notifier != nil {
		serviceName := ""
		if svc, err := se.Catalog.GetServiceByID(ctx, updated.ServiceID); err == nil && svc != nil {
			serviceName = svc.Name
		}
		se.Notifier.BookingStatusChanged(*updated, serviceName)
	}
	return updated, nil
}
