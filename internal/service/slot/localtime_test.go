package slot

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/timezone"
)

func TestLocalTime_SpringForwardGapRoundsForward(t *testing.T) {
	loc := timezone.Location("America/New_York")

	// 2025-03-09 02:30 does not exist in New York.
	got := LocalTime(2025, time.March, 9, 2, 30, loc)

	want := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LocalTime() = %v, want %v (03:00 EDT)", got, want)
	}
}

func TestLocalTime_FallBackAmbiguityUsesEarlierOffset(t *testing.T) {
	loc := timezone.Location("America/New_York")

	// 2025-11-02 01:30 happens twice in New York.
	got := LocalTime(2025, time.November, 2, 1, 30, loc)

	want := time.Date(2025, time.November, 2, 5, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LocalTime() = %v, want %v (01:30 EDT)", got, want)
	}
}

func TestLocalTime_RegularTime(t *testing.T) {
	loc := timezone.Location("Asia/Jakarta")

	got := LocalTime(2025, time.January, 6, 9, 0, loc)

	want := time.Date(2025, time.January, 6, 2, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("LocalTime() = %v, want %v", got, want)
	}
}

func TestExpand_DSTGapSlotsCollapse(t *testing.T) {
	loc := timezone.Location("America/New_York")
	// 2025-03-09 is a Sunday.
	day := time.Date(2025, time.March, 9, 12, 0, 0, 0, loc)

	pattern := mondayOnlyPattern()
	pattern[0].IsActive = true
	pattern[0].Times = []string{"02:15", "02:45", "03:00"}

	slots, err := Expand(pattern, day, day, loc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1 (%v)", len(slots), slots)
	}
	if want := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC); !slots[0].Equal(want) {
		t.Errorf("slots[0] = %v, want %v", slots[0], want)
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	loc := timezone.Location("Asia/Jakarta")
	instant := time.Date(2025, 1, 6, 20, 0, 0, 0, time.UTC) // 2025-01-07 03:00 WIB

	start := StartOfDay(instant, loc)
	end := EndOfDay(instant, loc)

	if want := time.Date(2025, 1, 7, 0, 0, 0, 0, loc); !start.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", start, want)
	}
	if want := time.Date(2025, 1, 8, 0, 0, 0, 0, loc).Add(-time.Nanosecond); !end.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", end, want)
	}
}
