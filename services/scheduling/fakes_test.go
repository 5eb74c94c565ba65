package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	availabilityRepo "beautybar/database/repository/availability"
	bookingRepo "beautybar/database/repository/booking"
	"beautybar/models"
)

// In-memory repository fakes. The ledger fake mirrors the mongo
// implementation's contract: CreateIfSlotFree atomically re-checks overlap
// before inserting.

type fakeCatalog struct {
	categories map[string]models.Category
	services   map[string]models.Service
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: make(map[string]models.Category),
		services:   make(map[string]models.Service),
	}
}

func (f *fakeCatalog) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	if cat, ok := f.categories[id]; ok {
		return &cat, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	for _, cat := range f.categories {
		if cat.Name == name {
			c := cat
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range f.categories {
		out = append(out, cat)
	}
	return out, nil
}

func (f *fakeCatalog) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if svc, ok := f.services[id]; ok {
		return &svc, nil
	}
	return nil, nil
}

func (f *fakeCatalog) ListServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.CategoryID == categoryID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

type fakeAvailability struct {
	entries map[string]models.WeeklyTemplateEntry // key: categoryID|weekday
	blocked map[string]models.BlockedDate         // key: id
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{
		entries: make(map[string]models.WeeklyTemplateEntry),
		blocked: make(map[string]models.BlockedDate),
	}
}

func entryKey(categoryID string, weekday int) string {
	return fmt.Sprintf("%s|%d", categoryID, weekday)
}

func (f *fakeAvailability) GetTemplateEntry(ctx context.Context, categoryID string, weekday int) (*models.WeeklyTemplateEntry, error) {
	if entry, ok := f.entries[entryKey(categoryID, weekday)]; ok {
		return &entry, nil
	}
	return nil, nil
}

func (f *fakeAvailability) ListTemplate(ctx context.Context, categoryID string) ([]models.WeeklyTemplateEntry, error) {
	var out []models.WeeklyTemplateEntry
	for _, entry := range f.entries {
		if entry.CategoryID == categoryID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeAvailability) UpsertTemplateEntry(ctx context.Context, entry *models.WeeklyTemplateEntry) error {
	f.entries[entryKey(entry.CategoryID, entry.Weekday)] = *entry
	return nil
}

func (f *fakeAvailability) ListBlockedDates(ctx context.Context, categoryID, date string) ([]models.BlockedDate, error) {
	var out []models.BlockedDate
	for _, b := range f.blocked {
		if b.CategoryID == categoryID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeAvailability) ListBlockedDatesByCategory(ctx context.Context, categoryID string) ([]models.BlockedDate, error) {
	var out []models.BlockedDate
	for _, b := range f.blocked {
		if b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeAvailability) GetBlockedDate(ctx context.Context, id string) (*models.BlockedDate, error) {
	if b, ok := f.blocked[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeAvailability) CreateBlockedDate(ctx context.Context, blocked *models.BlockedDate) error {
	f.blocked[blocked.ID] = *blocked
	return nil
}

func (f *fakeAvailability) DeleteBlockedDate(ctx context.Context, id string) error {
	if _, ok := f.blocked[id]; !ok {
		return availabilityRepo.ErrNotFound
	}
	delete(f.blocked, id)
	return nil
}

type fakeLedger struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{bookings: make(map[string]models.Booking)}
}

func (f *fakeLedger) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeLedger) List(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (f *fakeLedger) ListOverlapping(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ServiceID == serviceID && b.Occupies() && rangesOverlap(b.AppointmentStart, b.AppointmentEnd, from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) CountForServicesInRange(ctx context.Context, serviceIDs []string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		ids[id] = true
	}
	var count int64
	for _, b := range f.bookings {
		if ids[b.ServiceID] && b.Occupies() && rangesOverlap(b.AppointmentStart, b.AppointmentEnd, from, to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeLedger) CreateIfSlotFree(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ServiceID == booking.ServiceID && b.Occupies() &&
			rangesOverlap(b.AppointmentStart, b.AppointmentEnd, booking.AppointmentStart, booking.AppointmentEnd) {
			return bookingRepo.ErrConflict
		}
	}
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeLedger) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return &b, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []models.Booking
	changed []models.Booking
}

func (f *fakeNotifier) BookingCreated(b models.Booking, serviceName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, b)
}

func (f *fakeNotifier) BookingStatusChanged(b models.Booking, serviceName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed = append(f.changed, b)
}
