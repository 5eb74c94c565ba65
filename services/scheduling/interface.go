package scheduling

import (
	"context"
	"sync"

	availabilityRepo "beautybar/database/repository/availability"
	bookingRepo "beautybar/database/repository/booking"
	catalogRepo "beautybar/database/repository/catalog"
	"beautybar/models"
)

// Notifier is invoked after successful writes. Delivery is decoupled from
// correctness: a notifier failure must never fail or roll back the booking,
// so implementations are expected to enqueue and return.
type Notifier interface {
	BookingCreated(booking models.Booking, serviceName string)
	BookingStatusChanged(booking models.Booking, serviceName string)
}

// SchedulingEngine is the availability-to-time-slot resolution core plus the
// write paths that guard it. It takes and returns plain records only; no
// framework types cross this boundary.
type SchedulingEngine interface {
	AvailableSlots(ctx context.Context, query SlotQuery) ([]models.Slot, error)
	AdmitBooking(ctx context.Context, req AdmissionRequest) (*models.Booking, error)
	TransitionBooking(ctx context.Context, bookingID, newStatus string) (*models.Booking, error)

	WeeklyTemplate(ctx context.Context, categoryID string) ([]models.WeeklyTemplateEntry, error)
	SetWeeklyTemplateEntry(ctx context.Context, entry models.WeeklyTemplateEntry) (*models.WeeklyTemplateEntry, error)
	BlockedDates(ctx context.Context, categoryID string) ([]models.BlockedDate, error)
	AddBlockedDate(ctx context.Context, req BlockedDateRequest) (*models.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id string) error
}

// DefaultSchedulingEngine is the production implementation. Reads take no
// locks and are safe to call in parallel; AdmitBooking serializes racing
// admissions per (service, date) via an advisory lock.
type DefaultSchedulingEngine struct {
	Clock        *Clock
	Catalog      catalogRepo.CatalogRepository
	Availability availabilityRepo.AvailabilityRepository
	Ledger       bookingRepo.BookingRepository
	Notifier     Notifier // optional

	mu         sync.Mutex
	admitLocks map[string]*sync.Mutex
}

var _ SchedulingEngine = (*DefaultSchedulingEngine)(nil)

// admitLock returns the advisory lock for a (serviceID, date) pair, creating
// it on first use.
func (se *DefaultSchedulingEngine) admitLock(serviceID, date string) *sync.Mutex {
	se.mu.Lock()
	defer se.mu.Unlock()

	if se.admitLocks == nil {
		se.admitLocks = make(map[string]*sync.Mutex)
	}
	key := serviceID + "|" + date
	lock, exists := se.admitLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		se.admitLocks[key] = lock
	}
	return lock
}
