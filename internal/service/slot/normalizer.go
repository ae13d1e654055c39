package slot

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// canonicalTimePattern is the write-side format of a configured posting time.
var canonicalTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsCanonicalTime reports whether s is already a zero-padded 24h "HH:mm".
func IsCanonicalTime(s string) bool {
	return canonicalTimePattern.MatchString(s)
}

// NormalizeTime turns "H:m", "HH:m", "H:mm" or "HH:mm" into "HH:mm".
func NormalizeTime(raw string) (string, error) {
	hour, minute, err := parseClock(raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// DedupeAndSort drops exact duplicates and sorts ascending. Lexicographic
// order equals chronological order for canonical "HH:mm" values.
func DedupeAndSort(times []string) []string {
	out := slices.Clone(times)
	slices.Sort(out)
	return slices.Compact(out)
}

func parseClock(raw string) (int, int, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, raw)
	}

	hour, err := parseClockField(hourPart, 23)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, raw)
	}
	minute, err := parseClockField(minutePart, 59)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, raw)
	}

	return hour, minute, nil
}

func parseClockField(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, domain.ErrInvalidTime
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, domain.ErrInvalidTime
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil || v > max {
		return 0, domain.ErrInvalidTime
	}
	return v, nil
}
