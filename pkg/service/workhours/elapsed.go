package workhours

import "time"

// ElapsedBusinessHours returns the business time between start and end in hours.
//
// Every business day strictly between the start and end dates counts as a full
// 24 hours. The start day counts from start until 23:59, the end day from 00:01
// until end, and a span within one day counts end minus start. Partial days are
// clipped to the 00:01-23:59 window. Weekends count zero and an inverted range
// yields zero.
func (c *Clock) ElapsedBusinessHours(start, end time.Time) float64 {
	start, end = c.Normalize(start), c.Normalize(end)
	if !end.After(start) {
		return 0
	}

	firstDay, lastDay := c.midnight(start), c.midnight(end)

	var total time.Duration
	for day := firstDay; !day.After(lastDay); day = c.midnight(day.AddDate(0, 0, 1)) {
		if !c.IsBusinessDay(day) {
			continue
		}

		isFirst, isLast := day.Equal(firstDay), day.Equal(lastDay)
		opens, closes := c.at(day, WorkdayStart), c.at(day, WorkdayEnd)

		switch {
		case isFirst && isLast:
			total += span(later(start, opens), earlier(end, closes))
		case isFirst:
			total += span(later(start, opens), closes)
		case isLast:
			total += span(opens, earlier(end, closes))
		default:
			total += fullDay
		}
	}

	return total.Hours()
}

func span(from, to time.Time) time.Duration {
	if d := to.Sub(from); d > 0 {
		return d
	}
	return 0
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
