package slot

import (
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// KeyIndex is the set of business-local minute keys taken by manual posts.
type KeyIndex map[string]struct{}

func BuildKeyIndex(posts []domain.ManualPost, loc *time.Location) KeyIndex {
	index := make(KeyIndex, len(posts))
	for _, p := range posts {
		index[domain.LocalMinuteKey(p.Date, loc)] = struct{}{}
	}
	return index
}

func (idx KeyIndex) Contains(t time.Time, loc *time.Location) bool {
	_, ok := idx[domain.LocalMinuteKey(t, loc)]
	return ok
}

// Filter drops every slot whose local minute is already taken by a manual post.
func Filter(slots []time.Time, idx KeyIndex, loc *time.Location) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if idx.Contains(s, loc) {
			continue
		}
		out = append(out, s)
	}
	return out
}
