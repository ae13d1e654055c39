package upcoming

import (
	"slices"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/window"
)

// Aggregate merges manual posts inside w that are not in the past with the
// auto posts, ordered by date. Manual posts come before auto posts at the
// same instant.
func Aggregate(manual []domain.ManualPost, auto []domain.UpcomingPost, w window.Window, now time.Time, loc *time.Location) []domain.UpcomingPost {
	if loc == nil {
		loc = time.UTC
	}

	posts := make([]domain.UpcomingPost, 0, len(manual)+len(auto))
	for _, m := range manual {
		if m.Date.Before(now) || !w.Contains(m.Date) {
			continue
		}
		posts = append(posts, fromManual(m, loc))
	}
	for _, a := range auto {
		a.Date = a.Date.In(loc)
		posts = append(posts, a)
	}

	slices.SortStableFunc(posts, func(a, b domain.UpcomingPost) int {
		return a.Date.Compare(b.Date)
	})
	return posts
}

func fromManual(m domain.ManualPost, loc *time.Location) domain.UpcomingPost {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	platforms := m.Platforms
	if platforms == nil {
		platforms = []domain.PlatformID{}
	}

	return domain.UpcomingPost{
		Date:      m.Date.In(loc),
		Images:    slices.Clone(images),
		Platforms: slices.Clone(platforms),
		Type:      domain.PostTypeManual,
		Title:     m.Caption,
		Category:  m.Category,
		ContentID: m.ContentRef,
	}
}
