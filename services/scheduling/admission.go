package scheduling

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "beautybar/database/repository/booking"
	"beautybar/models"

	"github.com/google/uuid"
)

// AdmissionRequest carries a slot selection to be turned into a booking. The
// engine never trusts that the slot came from a prior AvailableSlots call;
// every rule is re-derived at write time.
type AdmissionRequest struct {
	ServiceID     string
	Date          string // "2006-01-02", business-local
	StartTime     string // "HH:mm"
	EndTime       string // "HH:mm"
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// AdmitBooking re-validates the requested slot against the weekly template,
// blocked dates and the booking ledger, then records a booking at pending
// status. Racing admissions for overlapping ranges of the same service are
// serialized by an advisory lock keyed (serviceID, date), and the ledger
// insert re-checks overlap transactionally. On conflict the caller gets
// ErrSlotUnavailable and must re-query with the user involved; the engine
// never auto-retries.
func (se *DefaultSchedulingEngine) AdmitBooking(ctx context.Context, req AdmissionRequest) (*models.Booking, error) {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" {
		return nil, invalidInput("customer", "name, email and phone are required")
	}
	if req.Date < se.Clock.Today() {
		return nil, invalidInput("date", fmt.Sprintf("%s is in the past", req.Date))
	}

	dc, err := se.resolveDay(ctx, req.ServiceID, req.Date)
	if err != nil {
		return nil, err
	}

	startMin, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if startMin >= endMin {
		return nil, invalidInput("time range", fmt.Sprintf("%s is not before %s", req.StartTime, req.EndTime))
	}
	if endMin-startMin != dc.service.DurationMinutes {
		return nil, invalidInput("time range",
			fmt.Sprintf("range is %d minutes but service requires %d", endMin-startMin, dc.service.DurationMinutes))
	}

	if dc.closed() {
		return nil, fmt.Errorf("no availability on %s: %w", req.Date, ErrSlotUnavailable)
	}

	requested := interval{Start: startMin, End: endMin}
	candidates, err := candidateSlots(dc.entry, dc.service.DurationMinutes, dc.blocks)
	if err != nil {
		return nil, err
	}
	onGrid := false
	for _, cand := range candidates {
		if cand == requested {
			onGrid = true
			break
		}
	}
	if !onGrid {
		return nil, fmt.Errorf("%s-%s on %s is not an offered slot: %w", req.StartTime, req.EndTime, req.Date, ErrSlotUnavailable)
	}

	// Serialize the check-and-insert against racing admissions for the same
	// scheduling domain. Categories and services are independent, so the lock
	// is scoped no wider than (service, date).
	lock := se.admitLock(req.ServiceID, req.Date)
	lock.Lock()
	defer lock.Unlock()

	occupied, err := se.occupiedIntervals(ctx, req.ServiceID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, busy := range occupied {
		if requested.overlaps(busy) {
			return nil, fmt.Errorf("%s-%s on %s already booked: %w", req.StartTime, req.EndTime, req.Date, ErrSlotUnavailable)
		}
	}

	capReached, err := se.dayCapReached(ctx, dc, req.Date)
	if err != nil {
		return nil, err
	}
	if capReached {
		return nil, fmt.Errorf("daily booking cap reached on %s: %w", req.Date, ErrSlotUnavailable)
	}

	startInstant, endInstant, err := se.Clock.InstantRange(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:               uuid.New().String(),
		ServiceID:        req.ServiceID,
		AppointmentStart: startInstant,
		AppointmentEnd:   endInstant,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Status:           models.BookingStatusPending,
		CreatedAt:        se.Clock.Now().UTC(),
	}

	if err := se.Ledger.CreateIfSlotFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrConflict) {
			return nil, fmt.Errorf("%s-%s on %s already booked: %w", req.StartTime, req.EndTime, req.Date, ErrSlotUnavailable)
		}
		return nil, storageErr("booking insert", err)
	}

	if se.Notifier != nil {
		se.Notifier.BookingCreated(*booking, dc.service.Name)
	}
	return booking, nil
}
