package slot

import (
	"slices"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// DayTimes maps each active day of pattern to its normalized, deduplicated,
// ascending times. Strings that fail to normalize are dropped; see
// InvalidTimes. Multiple entries for the same day are merged.
func DayTimes(pattern domain.WeeklyPattern) map[domain.DayOfWeek][]string {
	byDay := make(map[domain.DayOfWeek][]string)
	for _, day := range pattern {
		if !day.IsActive || !day.Day.Valid() {
			continue
		}
		for _, raw := range day.Times {
			normalized, err := NormalizeTime(raw)
			if err != nil {
				continue
			}
			byDay[day.Day] = append(byDay[day.Day], normalized)
		}
	}

	for day, times := range byDay {
		byDay[day] = DedupeAndSort(times)
	}
	return byDay
}

// InvalidTimes lists the time strings of active days that DayTimes drops.
func InvalidTimes(pattern domain.WeeklyPattern) []string {
	var invalid []string
	for _, day := range pattern {
		if !day.IsActive {
			continue
		}
		for _, raw := range day.Times {
			if _, err := NormalizeTime(raw); err != nil {
				invalid = append(invalid, raw)
			}
		}
	}
	return invalid
}

// Expand produces every slot of pattern between the local start of
// windowStart's day and the local end of windowEnd's day, ascending.
// Slots strictly before nowCutoff are dropped when it is non-nil.
func Expand(
	pattern domain.WeeklyPattern,
	windowStart, windowEnd time.Time,
	loc *time.Location,
	nowCutoff *time.Time,
) ([]time.Time, error) {
	if windowEnd.Before(windowStart) {
		return nil, domain.ErrInvalidRange
	}
	if loc == nil {
		loc = time.UTC
	}

	lower := StartOfDay(windowStart, loc)
	upper := EndOfDay(windowEnd, loc)

	dayTimes := DayTimes(pattern)
	slots := make([]time.Time, 0)
	if len(dayTimes) == 0 {
		return slots, nil
	}

	first := civilDate(windowStart.In(loc))
	last := civilDate(windowEnd.In(loc))

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		times := dayTimes[domain.DayOfWeekFromWeekday(day.Weekday())]
		for _, hhmm := range times {
			hour, minute, err := parseClock(hhmm)
			if err != nil {
				continue
			}

			candidate := LocalTime(day.Year(), day.Month(), day.Day(), hour, minute, loc)
			if candidate.Before(lower) || candidate.After(upper) {
				continue
			}
			if nowCutoff != nil && candidate.Before(*nowCutoff) {
				continue
			}
			slots = append(slots, candidate)
		}
	}

	slices.SortStableFunc(slots, func(a, b time.Time) int {
		return a.Compare(b)
	})
	// Gap rounding can map two wall times onto the same instant.
	return slices.CompactFunc(slots, func(a, b time.Time) bool {
		return a.Equal(b)
	}), nil
}

// civilDate pins a local calendar date to UTC midnight so day stepping is
// unaffected by offset changes.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
