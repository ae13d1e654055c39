package queue

import (
	"slices"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// Result is the outcome of one greedy pass over slots and content.
type Result struct {
	Posts []domain.UpcomingPost
	// UnfilledSlots are the slots left without content, still open for later.
	UnfilledSlots []time.Time
	// Backlog is the number of eligible items that did not get a slot.
	Backlog int
}

// Eligible returns the items that may be auto-posted, in input order.
// An id seen twice keeps its first position.
func Eligible(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if !item.IsEligible() {
			continue
		}
		if item.ID != "" {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
		}
		out = append(out, item)
	}
	return out
}

// Assign pairs the i-th slot with the i-th eligible item. slots must be
// ascending; content order is the queue order.
func Assign(eligible []domain.ContentItem, slots []time.Time, platforms domain.PlatformSet) Result {
	n := min(len(eligible), len(slots))

	posts := make([]domain.UpcomingPost, 0, n)
	for i := 0; i < n; i++ {
		item := eligible[i]
		posts = append(posts, domain.UpcomingPost{
			Date:      slots[i],
			Images:    cloneStrings(item.Images),
			Platforms: slices.Clone([]domain.PlatformID(platforms)),
			Type:      domain.PostTypeAuto,
			Title:     item.Caption,
			Category:  item.Category,
			ContentID: item.ID,
		})
	}

	return Result{
		Posts:         posts,
		UnfilledSlots: slices.Clone(slots[n:]),
		Backlog:       len(eligible) - n,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
