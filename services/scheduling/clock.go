package scheduling

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Clock is the single source of truth for converting between business-local
// wall-clock time and absolute instants. All templates, blocked dates and the
// public slot surface speak local "HH:mm"; everything persisted speaks UTC.
// Methods are pure apart from Now.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock builds a Clock for the given IANA timezone name.
func NewClock(timezone string) (*Clock, error) {
	return NewClockAt(timezone, time.Now)
}

// NewClockAt builds a Clock with an injected time source, for tests and
// replayed administrative queries.
func NewClockAt(timezone string, now func() time.Time) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown business timezone %q: %w", timezone, err)
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}, nil
}

// Location returns the business timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant.
func (c *Clock) Now() time.Time {
	return c.now()
}

// Today returns the current calendar date in business terms.
func (c *Clock) Today() string {
	return c.now().In(c.loc).Format(dateLayout)
}

// BusinessDate answers "what day is this instant, in business terms": the
// calendar date and canonical weekday (Sunday=0..Saturday=6).
func (c *Clock) BusinessDate(instant time.Time) (string, int) {
	local := instant.In(c.loc)
	return local.Format(dateLayout), int(local.Weekday())
}

// Weekday resolves the canonical weekday of a business-local calendar date.
func (c *Clock) Weekday(date string) (int, error) {
	day, err := c.parseDate(date)
	if err != nil {
		return 0, err
	}
	return int(day.Weekday()), nil
}

// InstantRange converts a (date, localStart, localEnd) triple into absolute
// UTC instants. A local HH:mm on a given date maps to exactly one instant
// under the offset rule in effect that day, DST transitions included.
func (c *Clock) InstantRange(date, localStart, localEnd string) (time.Time, time.Time, error) {
	day, err := c.parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startMin, err := ParseClock(localStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ParseClock(localEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, c.loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), endMin/60, endMin%60, 0, 0, c.loc)
	return start.UTC(), end.UTC(), nil
}

// DayBounds returns the UTC instants spanning the whole business-local
// calendar date as a half-open range [midnight, next midnight).
func (c *Clock) DayBounds(date string) (time.Time, time.Time, error) {
	day, err := c.parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC(), nil
}

// LocalMinutes converts an instant to business-local minutes from midnight.
func (c *Clock) LocalMinutes(instant time.Time) int {
	local := instant.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

func (c *Clock) parseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, c.loc)
	if err != nil {
		return time.Time{}, invalidInput("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	return day, nil
}

// ParseClock parses a business-local "HH:mm" string into minutes from
// midnight. Fails with ErrInvalidTimeFormat on anything else.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
