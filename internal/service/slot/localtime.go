package slot

import "time"

// LocalTime builds the instant for a wall-clock date and time in loc.
//
// A wall time that falls in a spring-forward gap rounds forward to the
// transition instant. A wall time that occurs twice during a fall-back
// resolves to the earlier offset.
func LocalTime(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	want := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	t := time.Date(year, month, day, hour, minute, 0, 0, loc)

	got := wallClock(t)
	switch {
	case got.Before(want):
		_, end := t.ZoneBounds()
		if !end.IsZero() {
			return end
		}
		return t
	case got.After(want):
		start, _ := t.ZoneBounds()
		if !start.IsZero() {
			return start
		}
		return t
	}

	return earliestOccurrence(t)
}

// StartOfDay returns local midnight (or the first valid instant of the day)
// of the calendar day containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return LocalTime(y, m, d, 0, 0, loc)
}

// EndOfDay returns the last nanosecond of the calendar day containing t in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return LocalTime(y, m, d+1, 0, 0, loc).Add(-time.Nanosecond)
}

func earliestOccurrence(t time.Time) time.Time {
	start, _ := t.ZoneBounds()
	if start.IsZero() {
		return t
	}

	_, prevOffset := start.Add(-time.Nanosecond).Zone()
	_, offset := t.Zone()
	if prevOffset <= offset {
		return t
	}

	alt := t.Add(-time.Duration(prevOffset-offset) * time.Second)
	if alt.Before(start) && wallClock(alt).Equal(wallClock(t)) {
		return alt
	}
	return t
}

// wallClock re-reads t's local fields as if they were UTC, so wall times in
// different offsets can be compared.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
