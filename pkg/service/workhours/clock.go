package workhours

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Business day window. Both ends keep a one-minute buffer around midnight.
const (
	WorkdayStart = time.Minute
	WorkdayEnd   = 23*time.Hour + 59*time.Minute
	fullDay      = 24 * time.Hour
)

// Layouts of timestamps carrying a UTC offset, as the issue tracker sends them
var awareLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
}

// Layouts of timestamps without offset, read as wall clock time of the clock's zone
var naiveLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Clock converts timestamps into a fixed timezone and measures business time in it
type Clock struct {
	loc *time.Location
}

// New creates a Clock for loc. A nil location means UTC.
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

// NewFromName creates a Clock from an IANA timezone name
func NewFromName(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load timezone", goerr.V("timezone", name))
	}
	return New(loc), nil
}

// Location returns the clock's timezone
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Normalize converts t into the clock's timezone
func (c *Clock) Normalize(t time.Time) time.Time {
	return t.In(c.loc)
}

// ParseTimestamp parses a tracker timestamp and normalizes it. Values without
// an offset are taken as wall clock time in the clock's timezone.
func (c *Clock) ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return c.Normalize(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.New("unsupported timestamp format", goerr.V("value", value))
}

// IsBusinessDay reports whether t falls on Monday to Friday in the clock's timezone
func (c *Clock) IsBusinessDay(t time.Time) bool {
	switch c.Normalize(t).Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// midnight returns 00:00 of the calendar day of t in the clock's timezone
func (c *Clock) midnight(t time.Time) time.Time {
	y, m, d := c.Normalize(t).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// at returns the wall clock time offset into the calendar day of day
func (c *Clock) at(day time.Time, offset time.Duration) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, int(offset/time.Hour), int(offset%time.Hour/time.Minute), 0, 0, c.loc)
}
