package domain

import "time"

const localMinuteLayout = "2006-01-02 15:04"

// LocalMinuteKey formats t as a business-local "YYYY-MM-DD HH:mm" key.
func LocalMinuteKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(localMinuteLayout)
}
