package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the layout of dates accepted on the command line
const DateLayout = "2006-01-02"

// DateRange is a reporting period. Start is never after End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange creates a DateRange, rejecting inverted ranges
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, goerr.Wrap(ErrInvertedRange, "invalid date range",
			goerr.V("start", start),
			goerr.V("end", end))
	}
	return DateRange{Start: start, End: end}, nil
}

// dayStart returns 00:01 of the given calendar day in loc
func dayStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 1, 0, 0, loc)
}

// dayEnd returns the last instant of 23:59 of the given calendar day in loc
func dayEnd(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

// WorkWeek returns Monday 00:01 to Friday 23:59:59.999999999 of the week that is
// weeksAgo weeks before the week containing now, in loc.
func WorkWeek(now time.Time, loc *time.Location, weeksAgo int) DateRange {
	local := now.In(loc)
	sinceMonday := (int(local.Weekday()) + 6) % 7
	monday := local.AddDate(0, 0, -sinceMonday-7*weeksAgo)
	friday := monday.AddDate(0, 0, 4)

	return DateRange{
		Start: dayStart(monday.Year(), monday.Month(), monday.Day(), loc),
		End:   dayEnd(friday.Year(), friday.Month(), friday.Day(), loc),
	}
}

// PreviousWorkWeek returns the work week before the one containing now
func PreviousWorkWeek(now time.Time, loc *time.Location) DateRange {
	return WorkWeek(now, loc, 1)
}

// ParseDateRange builds a range from two YYYY-MM-DD dates, from 00:01 on the
// first day to 23:59:59.999999999 on the last.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	fromDate, err := time.ParseInLocation(DateLayout, from, loc)
	if err != nil {
		return DateRange{}, goerr.Wrap(err, "invalid start date",
			goerr.V("from", from),
			goerr.T(ErrTagConfig))
	}
	toDate, err := time.ParseInLocation(DateLayout, to, loc)
	if err != nil {
		return DateRange{}, goerr.Wrap(err, "invalid end date",
			goerr.V("to", to),
			goerr.T(ErrTagConfig))
	}

	dr, err := NewDateRange(
		dayStart(fromDate.Year(), fromDate.Month(), fromDate.Day(), loc),
		dayEnd(toDate.Year(), toDate.Month(), toDate.Day(), loc),
	)
	if err != nil {
		return DateRange{}, goerr.Wrap(err, "invalid report period", goerr.T(ErrTagConfig))
	}
	return dr, nil
}
