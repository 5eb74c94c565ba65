package scheduling

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "beautybar/database/repository/availability"
	"beautybar/models"

	"github.com/google/uuid"
)

// BlockedDateRequest describes a one-off availability override. Leave both
// StartTime and EndTime nil to block the entire day.
type BlockedDateRequest struct {
	CategoryID string
	Date       string  // "2006-01-02", business-local
	StartTime  *string // "HH:mm"
	EndTime    *string // "HH:mm"
	Reason     string
}

// WeeklyTemplate returns the category's full weekly template, always seven
// entries ordered Sunday..Saturday. Weekdays without a stored entry come back
// as unavailable defaults.
func (se *DefaultSchedulingEngine) WeeklyTemplate(ctx context.Context, categoryID string) ([]models.WeeklyTemplateEntry, error) {
	if err := se.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	stored, err := se.Availability.ListTemplate(ctx, categoryID)
	if err != nil {
		return nil, storageErr("weekly template list", err)
	}

	week := make([]models.WeeklyTemplateEntry, 7)
	for weekday := range week {
		week[weekday] = models.WeeklyTemplateEntry{
			CategoryID:  categoryID,
			Weekday:     weekday,
			IsAvailable: false,
		}
	}
	for _, entry := range stored {
		if entry.Weekday >= 0 && entry.Weekday <= 6 {
			week[entry.Weekday] = entry
		}
	}
	return week, nil
}

// SetWeeklyTemplateEntry validates and stores one weekday's recurring hours,
// replacing any existing entry for that (category, weekday).
func (se *DefaultSchedulingEngine) SetWeeklyTemplateEntry(ctx context.Context, entry models.WeeklyTemplateEntry) (*models.WeeklyTemplateEntry, error) {
	if entry.Weekday < 0 || entry.Weekday > 6 {
		return nil, invalidInput("weekday", fmt.Sprintf("%d is outside 0..6 (Sunday=0)", entry.Weekday))
	}
	if entry.MaxBookings < 0 {
		return nil, invalidInput("maxBookings", "must not be negative")
	}
	if entry.BreakMinutes < 0 {
		return nil, invalidInput("breakMinutes", "must not be negative")
	}
	if err := se.requireCategory(ctx, entry.CategoryID); err != nil {
		return nil, err
	}
	if entry.IsAvailable {
		open, err := ParseClock(entry.OpenTime)
		if err != nil {
			return nil, err
		}
		close, err := ParseClock(entry.CloseTime)
		if err != nil {
			return nil, err
		}
		if open >= close {
			return nil, invalidInput("openTime", fmt.Sprintf("%s is not before closeTime %s", entry.OpenTime, entry.CloseTime))
		}
	}

	if err := se.Availability.UpsertTemplateEntry(ctx, &entry); err != nil {
		return nil, storageErr("weekly template upsert", err)
	}
	return &entry, nil
}

// BlockedDates lists all overrides recorded for a category.
func (se *DefaultSchedulingEngine) BlockedDates(ctx context.Context, categoryID string) ([]models.BlockedDate, error) {
	if err := se.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	blocked, err := se.Availability.ListBlockedDatesByCategory(ctx, categoryID)
	if err != nil {
		return nil, storageErr("blocked dates list", err)
	}
	return blocked, nil
}

// AddBlockedDate records a whole-day or partial block for one calendar date.
func (se *DefaultSchedulingEngine) AddBlockedDate(ctx context.Context, req BlockedDateRequest) (*models.BlockedDate, error) {
	if err := se.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if _, err := se.Clock.Weekday(req.Date); err != nil {
		return nil, err
	}
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, invalidInput("time range", "startTime and endTime must be given together or not at all")
	}
	if req.StartTime != nil {
		start, err := ParseClock(*req.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(*req.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, invalidInput("time range", fmt.Sprintf("%s is not before %s", *req.StartTime, *req.EndTime))
		}
	}

	blocked := &models.BlockedDate{
		ID:         uuid.New().String(),
		CategoryID: req.CategoryID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}
	if err := se.Availability.CreateBlockedDate(ctx, blocked); err != nil {
		return nil, storageErr("blocked date insert", err)
	}
	return blocked, nil
}

// RemoveBlockedDate deletes an override by id.
func (se *DefaultSchedulingEngine) RemoveBlockedDate(ctx context.Context, id string) error {
	if err := se.Availability.DeleteBlockedDate(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return fmt.Errorf("blocked date %s: %w", id, ErrBlockedDateNotFound)
		}
		return storageErr("blocked date delete", err)
	}
	return nil
}

func (se *DefaultSchedulingEngine) requireCategory(ctx context.Context, categoryID string) error {
	cat, err := se.Catalog.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return storageErr("category lookup", err)
	}
	if cat == nil {
		return fmt.Errorf("category %s: %w", categoryID, ErrCategoryNotFound)
	}
	return nil
}
