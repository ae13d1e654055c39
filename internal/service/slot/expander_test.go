package slot

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/timezone"
)

func mondayOnlyPattern(times ...string) domain.WeeklyPattern {
	pattern := make(domain.WeeklyPattern, 0, 7)
	for d := domain.Sunday; d <= domain.Saturday; d++ {
		day := domain.DayPattern{Day: d}
		if d == domain.Monday {
			day.IsActive = true
			day.Times = times
		}
		pattern = append(pattern, day)
	}
	return pattern
}

func TestExpand_BasicWeeklyExpansion(t *testing.T) {
	loc := timezone.Location("Asia/Jakarta")
	// 2025-01-06 is a Monday.
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 12, 23, 59, 0, 0, loc)

	slots, err := Expand(mondayOnlyPattern("15:00", "09:00"), start, end, loc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Time{
		time.Date(2025, 1, 6, 9, 0, 0, 0, loc),
		time.Date(2025, 1, 6, 15, 0, 0, 0, loc),
	}
	if len(slots) != len(want) {
		t.Fatalf("len(slots) = %d, want %d (%v)", len(slots), len(want), slots)
	}
	for i := range want {
		if !slots[i].Equal(want[i]) {
			t.Errorf("slots[%d] = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestExpand_PastSlotExclusion(t *testing.T) {
	loc := timezone.Location("Asia/Jakarta")
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, loc)

	slots, err := Expand(mondayOnlyPattern("09:00", "15:00"), start, end, loc, &now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1 (%v)", len(slots), slots)
	}
	if want := time.Date(2025, 1, 6, 15, 0, 0, 0, loc); !slots[0].Equal(want) {
		t.Errorf("slots[0] = %v, want %v", slots[0], want)
	}
}

func TestExpand_CutoffEqualToSlotIsKept(t *testing.T) {
	loc := time.UTC
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, loc)

	slots, err := Expand(mondayOnlyPattern("09:00"), start, start, loc, &now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
}

func TestExpand_InvalidRange(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)

	_, err := Expand(mondayOnlyPattern("09:00"), start, end, time.UTC, nil)
	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("error = %v, want ErrInvalidRange", err)
	}
}

func TestExpand_ZeroDayWindowEvaluatesThatDay(t *testing.T) {
	loc := timezone.Location("Asia/Jakarta")
	instant := time.Date(2025, 1, 6, 10, 0, 0, 0, loc)

	slots, err := Expand(mondayOnlyPattern("09:00", "15:00"), instant, instant, loc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("len(slots) = %d, want 2", len(slots))
	}
}

func TestExpand_EmptyInputs(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	tests := []struct {
		name    string
		pattern domain.WeeklyPattern
	}{
		{name: "nil pattern", pattern: nil},
		{name: "inactive days only", pattern: domain.WeeklyPattern{{Day: domain.Monday, IsActive: false, Times: []string{"09:00"}}}},
		{name: "active day without times", pattern: domain.WeeklyPattern{{Day: domain.Monday, IsActive: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := Expand(tt.pattern, start, end, time.UTC, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if slots == nil || len(slots) != 0 {
				t.Errorf("slots = %v, want empty non-nil slice", slots)
			}
		})
	}
}

func TestExpand_NormalizesAndDedupesTimes(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	pattern := domain.WeeklyPattern{
		{Day: domain.Monday, IsActive: true, Times: []string{"9:0", "09:00", "bogus", "15:00"}},
		{Day: domain.Monday, IsActive: true, Times: []string{"15:00"}},
	}

	slots, err := Expand(pattern, start, start, time.UTC, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2 (%v)", len(slots), slots)
	}

	if invalid := InvalidTimes(pattern); len(invalid) != 1 || invalid[0] != "bogus" {
		t.Errorf("InvalidTimes() = %v, want [bogus]", invalid)
	}
}

func TestExpand_SpansMonthAndLeapDay(t *testing.T) {
	// Every day active at 08:00, Feb 27 .. Mar 2 2024 (leap year).
	pattern := make(domain.WeeklyPattern, 0, 7)
	for d := domain.Sunday; d <= domain.Saturday; d++ {
		pattern = append(pattern, domain.DayPattern{Day: d, IsActive: true, Times: []string{"08:00"}})
	}
	loc := timezone.Location("Asia/Jakarta")
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, loc)

	slots, err := Expand(pattern, start, end, loc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 5 {
		t.Fatalf("len(slots) = %d, want 5", len(slots))
	}
	if want := time.Date(2024, 2, 29, 8, 0, 0, 0, loc); !slots[2].Equal(want) {
		t.Errorf("slots[2] = %v, want %v", slots[2], want)
	}
}

func TestExpand_WindowBoundProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	zones := []string{"UTC", "Asia/Jakarta", "America/New_York", "Australia/Lord_Howe", "Pacific/Chatham"}

	for i := 0; i < 200; i++ {
		loc := timezone.Location(zones[rng.Intn(len(zones))])
		pattern := randomPattern(rng)

		start := time.Date(2025, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), rng.Intn(24), rng.Intn(60), 0, 0, loc)
		end := start.Add(time.Duration(rng.Intn(21*24)) * time.Hour)

		slots, err := Expand(pattern, start, end, loc, nil)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}

		lower := StartOfDay(start, loc)
		upper := EndOfDay(end, loc)
		for j, s := range slots {
			if s.Before(lower) || s.After(upper) {
				t.Fatalf("iteration %d: slot %v outside [%v, %v]", i, s, lower, upper)
			}
			if j > 0 && !slots[j-1].Before(s) {
				t.Fatalf("iteration %d: slots not strictly ascending at %d", i, j)
			}
		}
	}
}

func randomPattern(rng *rand.Rand) domain.WeeklyPattern {
	pattern := make(domain.WeeklyPattern, 0, 7)
	for d := domain.Sunday; d <= domain.Saturday; d++ {
		n := rng.Intn(4)
		times := make([]string, 0, n)
		for k := 0; k < n; k++ {
			times = append(times, fmt.Sprintf("%d:%d", rng.Intn(24), rng.Intn(60)))
		}
		pattern = append(pattern, domain.DayPattern{Day: d, IsActive: rng.Intn(3) > 0, Times: times})
	}
	return pattern
}
