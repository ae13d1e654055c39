package domain

import "time"

// DayOfWeek follows time.Weekday numbering: Sunday=0 ... Saturday=6.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func DayOfWeekFromWeekday(w time.Weekday) DayOfWeek {
	return DayOfWeek(w)
}

func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(d)
}

// DayPattern is the auto-posting configuration for one day of the week.
type DayPattern struct {
	Day      DayOfWeek `json:"day"`
	IsActive bool      `json:"is_active"`
	Times    []string  `json:"times"`
}

// WeeklyPattern holds at most one DayPattern per day of the week.
type WeeklyPattern []DayPattern

type BusinessScheduleConfig struct {
	BusinessID         string      `json:"business_id"`
	Timezone           string      `json:"timezone"`
	IsAutoPosting      bool        `json:"is_auto_posting"`
	ConnectedPlatforms PlatformSet `json:"connected_platforms"`
}

// AutoPlatforms returns the platforms auto-posts go out to: the members of
// eligible the business has connected, or none when auto-posting is off.
func (c BusinessScheduleConfig) AutoPlatforms(eligible PlatformSet) PlatformSet {
	if !c.IsAutoPosting {
		return PlatformSet{}
	}
	return eligible.Intersect(c.ConnectedPlatforms)
}
