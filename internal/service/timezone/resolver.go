package timezone

import (
	"strings"
	"time"

	// Zone data is embedded so resolution does not depend on the host image.
	_ "time/tzdata"
)

// DefaultZone is used whenever a configured zone is missing or unknown.
const DefaultZone = "UTC"

// Resolve returns the IANA zone name to operate in. It never fails.
func Resolve(raw string) string {
	return Location(raw).String()
}

// Location loads the business zone, falling back to UTC.
func Location(raw string) *time.Location {
	name := strings.TrimSpace(raw)
	if name == "" || name == "Local" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsValid reports whether raw names a loadable IANA zone.
func IsValid(raw string) bool {
	name := strings.TrimSpace(raw)
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
