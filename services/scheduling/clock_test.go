package scheduling

import (
	"errors"
	"testing"
	"time"
)

func torontoClock(t *testing.T, now time.Time) *Clock {
	t.Helper()
	clock, err := NewClockAt("America/Toronto", func() time.Time { return now })
	if err != nil {
		t.Fatalf("failed to build clock: %v", err)
	}
	return clock
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 9*60+30 {
		t.Fatalf("expected 570 minutes, got %d", min)
	}

	for _, bad := range []string{"", "9:30:00", "24:00", "09-30", "noon"} {
		if _, err := ParseClock(bad); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("expected ErrInvalidTimeFormat for %q, got %v", bad, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %s", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
}

func TestBusinessDateWeekdayMapping(t *testing.T) {
	clock := torontoClock(t, time.Now())

	// 2026-03-02 is a Monday in Toronto. 03:00 UTC that day is still the
	// previous local evening, so the business date must roll back to Sunday.
	utc := time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC)
	date, weekday := clock.BusinessDate(utc)
	if date != "2026-03-01" {
		t.Fatalf("expected business date 2026-03-01, got %s", date)
	}
	if weekday != 0 {
		t.Fatalf("expected Sunday=0, got %d", weekday)
	}

	noonUTC := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	date, weekday = clock.BusinessDate(noonUTC)
	if date != "2026-03-02" {
		t.Fatalf("expected business date 2026-03-02, got %s", date)
	}
	if weekday != 1 {
		t.Fatalf("expected Monday=1, got %d", weekday)
	}
}

func TestInstantRangeRoundTrip(t *testing.T) {
	clock := torontoClock(t, time.Now())

	start, end, err := clock.InstantRange("2026-03-02", "09:00", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Sub(start) != time.Hour {
		t.Fatalf("expected 1h range, got %s", end.Sub(start))
	}

	date, _ := clock.BusinessDate(start)
	if date != "2026-03-02" {
		t.Fatalf("round trip lost the date: got %s", date)
	}
	if got := FormatClock(clock.LocalMinutes(start)); got != "09:00" {
		t.Fatalf("round trip lost the start time: got %s", got)
	}
	if got := FormatClock(clock.LocalMinutes(end)); got != "10:00" {
		t.Fatalf("round trip lost the end time: got %s", got)
	}
}

func TestInstantRangeDSTTransitions(t *testing.T) {
	clock := torontoClock(t, time.Now())

	// Spring forward: 2026-03-08, clocks jump 02:00 -> 03:00 EST->EDT. A
	// morning slot after the gap maps to exactly one instant at UTC-4.
	start, _, err := clock.InstantRange("2026-03-08", "09:00", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.UTC().Hour() != 13 {
		t.Fatalf("expected 09:00 EDT == 13:00 UTC, got %02d:00", start.UTC().Hour())
	}

	// Fall back: 2026-11-01, offset returns to UTC-5.
	start, _, err = clock.InstantRange("2026-11-01", "09:00", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.UTC().Hour() != 14 {
		t.Fatalf("expected 09:00 EST == 14:00 UTC, got %02d:00", start.UTC().Hour())
	}

	// The spring-forward day is 23 hours long; DayBounds must still cover it
	// as one half-open range.
	dayStart, dayEnd, err := clock.DayBounds("2026-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dayEnd.Sub(dayStart) != 23*time.Hour {
		t.Fatalf("expected a 23h spring-forward day, got %s", dayEnd.Sub(dayStart))
	}
}

func TestInstantRangeMalformedInput(t *testing.T) {
	clock := torontoClock(t, time.Now())

	if _, _, err := clock.InstantRange("2026-03-02", "9am", "10:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
	if _, _, err := clock.InstantRange("03/02/2026", "09:00", "10:00"); !IsInvalidInput(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestToday(t *testing.T) {
	// 12:00 UTC on 2026-03-01 is 07:00 EST the same date.
	clock := torontoClock(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if got := clock.Today(); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}

	// 03:00 UTC on 2026-03-02 is still 22:00 on 2026-03-01 in Toronto.
	clock = torontoClock(t, time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC))
	if got := clock.Today(); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}
