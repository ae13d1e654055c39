package domain

import "time"

// DateRange is an inclusive, optionally open-ended instant range.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return ErrInvalidRange
	}
	return nil
}

func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// PlatformCount is a total plus a per-platform breakdown whose key set always
// covers every known platform.
type PlatformCount struct {
	Total  int                `json:"total"`
	Detail map[PlatformID]int `json:"detail"`
}
