package scheduling

import (
	"context"
	"errors"
	"testing"

	"beautybar/models"
)

func TestWeeklyTemplateAlwaysSevenEntries(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)
	setTemplate(availability, 1, "09:00", "17:00", 15, 3)
	setTemplate(availability, 3, "10:00", "16:00", 0, 0)

	week, err := engine.WeeklyTemplate(context.Background(), testCategoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(week))
	}
	for weekday, entry := range week {
		if entry.Weekday != weekday {
			t.Fatalf("entry %d carries weekday %d", weekday, entry.Weekday)
		}
	}
	if !week[1].IsAvailable || week[1].OpenTime != "09:00" {
		t.Fatalf("stored Monday entry not surfaced: %+v", week[1])
	}
	if week[0].IsAvailable || week[6].IsAvailable {
		t.Fatal("unset weekdays must default to unavailable")
	}
}

func TestWeeklyTemplateUnknownCategory(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, testNow)
	_, err := engine.WeeklyTemplate(context.Background(), "cat-nope")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestSetWeeklyTemplateEntryValidation(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, testNow)
	base := models.WeeklyTemplateEntry{
		CategoryID:  testCategoryID,
		Weekday:     2,
		IsAvailable: true,
		OpenTime:    "09:00",
		CloseTime:   "17:00",
	}

	cases := []struct {
		name   string
		mutate func(e *models.WeeklyTemplateEntry)
	}{
		{"weekday too high", func(e *models.WeeklyTemplateEntry) { e.Weekday = 7 }},
		{"weekday negative", func(e *models.WeeklyTemplateEntry) { e.Weekday = -1 }},
		{"negative cap", func(e *models.WeeklyTemplateEntry) { e.MaxBookings = -1 }},
		{"negative break", func(e *models.WeeklyTemplateEntry) { e.BreakMinutes = -5 }},
		{"open after close", func(e *models.WeeklyTemplateEntry) { e.OpenTime, e.CloseTime = "17:00", "09:00" }},
		{"open equals close", func(e *models.WeeklyTemplateEntry) { e.CloseTime = "09:00" }},
	}
	for _, tc := range cases {
		entry := base
		tc.mutate(&entry)
		if _, err := engine.SetWeeklyTemplateEntry(context.Background(), entry); !IsInvalidInput(err) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}

	entry := base
	entry.OpenTime = "9am"
	if _, err := engine.SetWeeklyTemplateEntry(context.Background(), entry); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestSetWeeklyTemplateEntrySkipsHoursCheckWhenUnavailable(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)
	entry := models.WeeklyTemplateEntry{CategoryID: testCategoryID, Weekday: 0, IsAvailable: false}

	stored, err := engine.SetWeeklyTemplateEntry(context.Background(), entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.IsAvailable {
		t.Fatal("entry came back available")
	}
	if _, ok := availability.entries[entryKey(testCategoryID, 0)]; !ok {
		t.Fatal("entry not persisted")
	}
}

func TestSetWeeklyTemplateEntryReplacesExisting(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)
	setTemplate(availability, 1, "09:00", "17:00", 0, 0)

	entry := models.WeeklyTemplateEntry{
		CategoryID:  testCategoryID,
		Weekday:     1,
		IsAvailable: true,
		OpenTime:    "10:00",
		CloseTime:   "14:00",
	}
	if _, err := engine.SetWeeklyTemplateEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := availability.entries[entryKey(testCategoryID, 1)]
	if got.OpenTime != "10:00" || got.CloseTime != "14:00" {
		t.Fatalf("entry not replaced: %+v", got)
	}
}

func TestAddBlockedDateWholeDay(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)

	blocked, err := engine.AddBlockedDate(context.Background(), BlockedDateRequest{
		CategoryID: testCategoryID,
		Date:       testMonday,
		Reason:     "Renovation",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked.WholeDay() {
		t.Fatal("block without times must cover the whole day")
	}
	if blocked.ID == "" {
		t.Fatal("blocked date has no ID")
	}
	if _, ok := availability.blocked[blocked.ID]; !ok {
		t.Fatal("blocked date not persisted")
	}
}

func TestAddBlockedDateValidation(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, testNow)
	start, end := "09:00", "09:30"

	// One-sided time range.
	_, err := engine.AddBlockedDate(context.Background(), BlockedDateRequest{
		CategoryID: testCategoryID, Date: testMonday, StartTime: &start,
	})
	if !IsInvalidInput(err) {
		t.Fatalf("expected invalid input for one-sided range, got %v", err)
	}

	// Inverted range.
	_, err = engine.AddBlockedDate(context.Background(), BlockedDateRequest{
		CategoryID: testCategoryID, Date: testMonday, StartTime: &end, EndTime: &start,
	})
	if !IsInvalidInput(err) {
		t.Fatalf("expected invalid input for inverted range, got %v", err)
	}

	// Malformed date.
	_, err = engine.AddBlockedDate(context.Background(), BlockedDateRequest{
		CategoryID: testCategoryID, Date: "03/02/2026",
	})
	if err == nil {
		t.Fatal("expected error for malformed date")
	}

	// Unknown category.
	_, err = engine.AddBlockedDate(context.Background(), BlockedDateRequest{
		CategoryID: "cat-nope", Date: testMonday,
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestBlockedDatesListsCategoryOverrides(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)
	availability.blocked["blk-1"] = models.BlockedDate{ID: "blk-1", CategoryID: testCategoryID, Date: testMonday}
	availability.blocked["blk-2"] = models.BlockedDate{ID: "blk-2", CategoryID: "cat-other", Date: testMonday}

	blocked, err := engine.BlockedDates(context.Background(), testCategoryID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocked) != 1 || blocked[0].ID != "blk-1" {
		t.Fatalf("expected only this category's override, got %+v", blocked)
	}
}

func TestRemoveBlockedDate(t *testing.T) {
	engine, _, availability, _ := newTestEngine(t, testNow)
	availability.blocked["blk-1"] = models.BlockedDate{ID: "blk-1", CategoryID: testCategoryID, Date: testMonday}

	if err := engine.RemoveBlockedDate(context.Background(), "blk-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := availability.blocked["blk-1"]; ok {
		t.Fatal("blocked date still present after removal")
	}

	if err := engine.RemoveBlockedDate(context.Background(), "blk-1"); !errors.Is(err, ErrBlockedDateNotFound) {
		t.Fatalf("expected ErrBlockedDateNotFound, got %v", err)
	}
}
