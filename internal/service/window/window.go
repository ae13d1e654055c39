package window

import (
	"fmt"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/slot"
)

const dateOnlyLayout = "2006-01-02"

// Bound is a caller-supplied range endpoint. A date-only bound has no zone
// of its own and is read in the business's timezone once that is known.
type Bound struct {
	at       time.Time
	dateOnly bool
}

// ParseBound accepts RFC3339 or YYYY-MM-DD. An empty string yields nil.
func ParseBound(raw string) (*Bound, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &Bound{at: t}, nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return &Bound{at: t, dateOnly: true}, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, raw)
}

// At wraps an exact instant.
func At(t time.Time) *Bound {
	return &Bound{at: t}
}

func (b *Bound) DateOnly() bool {
	return b.dateOnly
}

// StartIn is the earliest instant the bound denotes in loc.
func (b *Bound) StartIn(loc *time.Location) time.Time {
	if !b.dateOnly {
		return b.at
	}
	y, m, d := b.at.Date()
	return slot.LocalTime(y, m, d, 0, 0, loc)
}

// EndIn is the latest instant the bound denotes in loc.
func (b *Bound) EndIn(loc *time.Location) time.Time {
	if !b.dateOnly {
		return b.at
	}
	y, m, d := b.at.Date()
	return slot.LocalTime(y, m, d+1, 0, 0, loc).Add(-time.Nanosecond)
}

// Window is an inclusive projection window aligned to local day boundaries.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Range() domain.DateRange {
	start, end := w.Start, w.End
	return domain.DateRange{Start: &start, End: &end}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Resolve fills in the defaults for an upcoming-posts window: start defaults
// to the start of today and end to horizonDays days after start. Both ends
// are then widened to whole local days. A window covering more than maxDays
// calendar days fails with ErrWindowTooLong; maxDays <= 0 disables the check.
func Resolve(start, end *Bound, loc *time.Location, now time.Time, horizonDays, maxDays int) (Window, error) {
	if loc == nil {
		loc = time.UTC
	}

	var from time.Time
	if start != nil {
		from = start.StartIn(loc)
	} else {
		from = slot.StartOfDay(now, loc)
	}

	var to time.Time
	if end != nil {
		to = end.EndIn(loc)
	} else {
		y, m, d := from.In(loc).Date()
		to = slot.LocalTime(y, m, d+horizonDays, 0, 0, loc)
	}

	if to.Before(from) {
		return Window{}, domain.ErrInvalidRange
	}
	if maxDays > 0 && calendarDays(from, to, loc) > maxDays {
		return Window{}, fmt.Errorf("%w: more than %d days", domain.ErrWindowTooLong, maxDays)
	}

	return Window{
		Start: slot.StartOfDay(from, loc),
		End:   slot.EndOfDay(to, loc),
	}, nil
}

// Range converts optional bounds into an instant range for counting.
// Missing ends stay open.
func Range(start, end *Bound, loc *time.Location) (domain.DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	var rng domain.DateRange
	if start != nil {
		t := start.StartIn(loc)
		rng.Start = &t
	}
	if end != nil {
		t := end.EndIn(loc)
		rng.End = &t
	}

	if err := rng.Validate(); err != nil {
		return domain.DateRange{}, err
	}
	return rng, nil
}

// calendarDays counts the local dates from's day through to's day, inclusive.
func calendarDays(from, to time.Time, loc *time.Location) int {
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()
	first := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	last := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int((last.Unix()-first.Unix())/(24*60*60)) + 1
}
