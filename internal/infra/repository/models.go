package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

type businessModel struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	Timezone      string `gorm:"type:varchar(64)"`
	IsAutoPosting bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (businessModel) TableName() string { return "businesses" }

type platformConnectionModel struct {
	ID         uint   `gorm:"primaryKey"`
	BusinessID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_platform_connection"`
	Platform   string `gorm:"type:varchar(32);not null;uniqueIndex:idx_platform_connection"`
	CreatedAt  time.Time
}

func (platformConnectionModel) TableName() string { return "platform_connections" }

type schedulerDayModel struct {
	ID         uint     `gorm:"primaryKey"`
	BusinessID string   `gorm:"type:varchar(64);not null;index"`
	Day        int      `gorm:"not null"`
	IsActive   bool     `gorm:"not null;default:false"`
	Times      []string `gorm:"serializer:json"`
}

func (schedulerDayModel) TableName() string { return "scheduler_days" }

func (m schedulerDayModel) toDomain() domain.DayPattern {
	return domain.DayPattern{
		Day:      domain.DayOfWeek(m.Day),
		IsActive: m.IsActive,
		Times:    m.Times,
	}
}

type manualPostingModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)"`
	BusinessID string    `gorm:"type:varchar(64);not null;index:idx_manual_business_date"`
	ContentID  string    `gorm:"type:varchar(64);index"`
	Date       time.Time `gorm:"not null;index:idx_manual_business_date"`
	Platforms  []string  `gorm:"serializer:json"`
	Caption    string
	Images     []string `gorm:"serializer:json"`
	Category   string   `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
}

func (manualPostingModel) TableName() string { return "manual_postings" }

func (m manualPostingModel) toDomain() domain.ManualPost {
	platforms := make([]domain.PlatformID, len(m.Platforms))
	for i, p := range m.Platforms {
		platforms[i] = domain.PlatformID(p)
	}
	return domain.ManualPost{
		ID:         m.ID,
		Date:       m.Date.UTC(),
		Platforms:  platforms,
		ContentRef: m.ContentID,
		Caption:    m.Caption,
		Images:     nonNil(m.Images),
		Category:   m.Category,
	}
}

type contentModel struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	BusinessID  string `gorm:"type:varchar(64);not null;index"`
	Caption     string
	Category    string   `gorm:"type:varchar(64)"`
	Images      []string `gorm:"serializer:json"`
	ReadyToPost bool     `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (contentModel) TableName() string { return "contents" }

// contentRow is a content item joined with its posting state. gorm does not
// scan into unexported embedded structs, so the columns are listed here.
type contentRow struct {
	ID                string
	Caption           string
	Category          string
	Images            []string `gorm:"serializer:json"`
	ReadyToPost       bool
	CreatedAt         time.Time
	DeletedAt         gorm.DeletedAt
	HasPostedRecord   bool
	HasManualSchedule bool
}

func (r contentRow) toDomain() domain.ContentItem {
	item := domain.ContentItem{
		ID:                r.ID,
		Images:            nonNil(r.Images),
		Caption:           r.Caption,
		Category:          r.Category,
		ReadyToPost:       r.ReadyToPost,
		HasPostedRecord:   r.HasPostedRecord,
		HasManualSchedule: r.HasManualSchedule,
		CreatedAt:         r.CreatedAt.UTC(),
	}
	if r.DeletedAt.Valid {
		deleted := r.DeletedAt.Time.UTC()
		item.DeletedAt = &deleted
	}
	return item
}

type postedRecordModel struct {
	ID         uint      `gorm:"primaryKey"`
	BusinessID string    `gorm:"type:varchar(64);not null;index:idx_posted_business_created"`
	ContentID  string    `gorm:"type:varchar(64);index"`
	Platform   string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `gorm:"index:idx_posted_business_created"`
}

func (postedRecordModel) TableName() string { return "posted_records" }

// Models lists every table the repository reads, for AutoMigrate.
func Models() []any {
	return []any{
		&businessModel{},
		&platformConnectionModel{},
		&schedulerDayModel{},
		&manualPostingModel{},
		&contentModel{},
		&postedRecordModel{},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
