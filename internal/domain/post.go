package domain

import "time"

type PostType string

const (
	PostTypeAuto   PostType = "auto"
	PostTypeManual PostType = "manual"
)

func (t PostType) String() string {
	return string(t)
}

type ManualPost struct {
	ID         string
	Date       time.Time
	Platforms  []PlatformID
	ContentRef string
	Caption    string
	Images     []string
	Category   string
}

type ContentItem struct {
	ID                string
	Images            []string
	Caption           string
	Category          string
	ReadyToPost       bool
	DeletedAt         *time.Time
	HasPostedRecord   bool
	HasManualSchedule bool
	CreatedAt         time.Time
}

// IsEligible reports whether the item may be assigned to an auto slot.
func (c ContentItem) IsEligible() bool {
	return c.ReadyToPost && c.DeletedAt == nil && !c.HasPostedRecord && !c.HasManualSchedule
}

type PostedRecord struct {
	Platform  PlatformID
	CreatedAt time.Time
}

// UpcomingPost is a projected publication event. It is never persisted.
type UpcomingPost struct {
	Date      time.Time    `json:"date"`
	Images    []string     `json:"images"`
	Platforms []PlatformID `json:"platforms"`
	Type      PostType     `json:"type"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	ContentID string       `json:"content_id,omitempty"`
}
