package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"beautybar/models"
)

// SlotQuery identifies one (service, calendar date) availability question.
type SlotQuery struct {
	ServiceID string
	Date      string // "2006-01-02", business-local
	// AllowPast permits queries for dates before today in business time.
	// Administrative calendar views need it; the public surface does not.
	AllowPast bool
}

// interval is a half-open [Start,End) range in business-local minutes from
// midnight.
type interval struct {
	Start int
	End   int
}

func (iv interval) overlaps(other interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// dayContext carries everything resolved about one (service, date) pair:
// the service, its category's template entry for that weekday, and the
// blocked-date overrides in effect.
type dayContext struct {
	service         *models.Service
	entry           *models.WeeklyTemplateEntry
	weekday         int
	wholeDayBlocked bool
	blocks          []interval // partial blocks, each subtracted from the window
}

// closed reports whether the day yields no slots at all before the ledger is
// even consulted.
func (dc *dayContext) closed() bool {
	return dc.entry == nil || !dc.entry.IsAvailable || dc.wholeDayBlocked
}

// AvailableSlots produces the ordered sequence of candidate slots for the
// query, each tagged available/unavailable. Read-only; safe for parallel use.
func (se *DefaultSchedulingEngine) AvailableSlots(ctx context.Context, query SlotQuery) ([]models.Slot, error) {
	if !query.AllowPast {
		// Date strings share one fixed layout, so lexical order is day order.
		if query.Date < se.Clock.Today() {
			return nil, invalidInput("date", fmt.Sprintf("%s is in the past", query.Date))
		}
	}

	dc, err := se.resolveDay(ctx, query.ServiceID, query.Date)
	if err != nil {
		return nil, err
	}
	if dc.closed() {
		return []models.Slot{}, nil
	}

	candidates, err := candidateSlots(dc.entry, dc.service.DurationMinutes, dc.blocks)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.Slot{}, nil
	}

	occupied, err := se.occupiedIntervals(ctx, query.ServiceID, query.Date)
	if err != nil {
		return nil, err
	}

	capReached, err := se.dayCapReached(ctx, dc, query.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Slot, 0, len(candidates))
	for _, cand := range candidates {
		available := !capReached
		for _, busy := range occupied {
			if cand.overlaps(busy) {
				available = false
				break
			}
		}
		slots = append(slots, models.Slot{
			StartTime: FormatClock(cand.Start),
			EndTime:   FormatClock(cand.End),
			Available: available,
		})
	}
	return slots, nil
}

// resolveDay fetches and validates the static availability inputs for a
// (service, date) pair.
func (se *DefaultSchedulingEngine) resolveDay(ctx context.Context, serviceID, date string) (*dayContext, error) {
	weekday, err := se.Clock.Weekday(date)
	if err != nil {
		return nil, err
	}

	svc, err := se.Catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, storageErr("service lookup", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, ErrServiceNotFound)
	}
	if svc.DurationMinutes <= 0 {
		return nil, invalidInput("service duration", fmt.Sprintf("service %s has non-positive duration %d", serviceID, svc.DurationMinutes))
	}

	entry, err := se.Availability.GetTemplateEntry(ctx, svc.CategoryID, weekday)
	if err != nil {
		return nil, storageErr("weekly template lookup", err)
	}

	dc := &dayContext{service: svc, entry: entry, weekday: weekday}

	blocked, err := se.Availability.ListBlockedDates(ctx, svc.CategoryID, date)
	if err != nil {
		return nil, storageErr("blocked dates lookup", err)
	}
	for _, b := range blocked {
		if b.WholeDay() {
			dc.wholeDayBlocked = true
			continue
		}
		// Partial block with only one bound set is treated as malformed data
		// and surfaced rather than silently widened or ignored.
		if b.StartTime == nil || b.EndTime == nil {
			return nil, invalidInput("blocked date", fmt.Sprintf("blocked date %s has only one of startTime/endTime", b.ID))
		}
		start, err := ParseClock(*b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(*b.EndTime)
		if err != nil {
			return nil, err
		}
		dc.blocks = append(dc.blocks, interval{Start: start, End: end})
	}
	return dc, nil
}

// candidateSlots partitions the working window into slots of the service's
// duration, advancing by duration+break between starts. A slot is emitted
// only when it fits entirely inside the exception-trimmed window: within
// [open, close) and clear of every partial block. No partial trailing slot.
func candidateSlots(entry *models.WeeklyTemplateEntry, durationMinutes int, blocks []interval) ([]interval, error) {
	open, err := ParseClock(entry.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := ParseClock(entry.CloseTime)
	if err != nil {
		return nil, err
	}
	if open >= close {
		return nil, invalidInput("weekly template", fmt.Sprintf("openTime %s is not before closeTime %s", entry.OpenTime, entry.CloseTime))
	}

	step := durationMinutes + entry.BreakMinutes
	var out []interval
	for start := open; start+durationMinutes <= close; start += step {
		cand := interval{Start: start, End: start + durationMinutes}
		blockedOut := false
		for _, blk := range blocks {
			if cand.overlaps(blk) {
				blockedOut = true
				break
			}
		}
		if !blockedOut {
			out = append(out, cand)
		}
	}
	return out, nil
}

// occupiedIntervals loads the day's non-cancelled ledger entries for the
// service and converts them to business-local minute ranges, clamped to the
// day. Overlap against slots uses half-open semantics: touching endpoints do
// not conflict.
func (se *DefaultSchedulingEngine) occupiedIntervals(ctx context.Context, serviceID, date string) ([]interval, error) {
	dayStart, dayEnd, err := se.Clock.DayBounds(date)
	if err != nil {
		return nil, err
	}
	bookings, err := se.Ledger.ListOverlapping(ctx, serviceID, dayStart, dayEnd)
	if err != nil {
		return nil, storageErr("booking ledger lookup", err)
	}

	out := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, interval{
			Start: se.clampToDay(b.AppointmentStart, dayStart, dayEnd),
			End:   se.clampToDay(b.AppointmentEnd, dayStart, dayEnd),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

// clampToDay converts an instant to local minutes from midnight, pinning
// instants outside the business day to the day's edge.
func (se *DefaultSchedulingEngine) clampToDay(instant, dayStart, dayEnd time.Time) int {
	if !instant.After(dayStart) {
		return 0
	}
	if !instant.Before(dayEnd) {
		return 24 * 60
	}
	return se.Clock.LocalMinutes(instant)
}

// dayCapReached applies the template's maxBookings cap: when positive, no
// more than that many non-cancelled bookings may exist across the category's
// services on one calendar day.
func (se *DefaultSchedulingEngine) dayCapReached(ctx context.Context, dc *dayContext, date string) (bool, error) {
	if dc.entry.MaxBookings <= 0 {
		return false, nil
	}
	dayStart, dayEnd, err := se.Clock.DayBounds(date)
	if err != nil {
		return false, err
	}
	siblings, err := se.Catalog.ListServicesByCategory(ctx, dc.service.CategoryID)
	if err != nil {
		return false, storageErr("category services lookup", err)
	}
	ids := make([]string, 0, len(siblings))
	for _, s := range siblings {
		ids = append(ids, s.ID)
	}
	count, err := se.Ledger.CountForServicesInRange(ctx, ids, dayStart, dayEnd)
	if err != nil {
		return false, storageErr("booking count", err)
	}
	return count >= int64(dc.entry.MaxBookings), nil
}
