package upcoming

import (
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/queue"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/slot"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/timezone"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/window"
)

// Projection is the outcome of running the slot pipeline over one snapshot.
type Projection struct {
	Posts []domain.UpcomingPost
	// FreeSlots are the future pattern slots no manual post occupies.
	FreeSlots []time.Time
	// UnfilledSlots are the free slots left after content assignment.
	UnfilledSlots []time.Time
	Expanded      int
	Suppressed    int
	Assigned      int
	Backlog       int
	AutoPlatforms domain.PlatformSet
	InvalidTimes  []string
	Location      *time.Location
}

// Project expands the weekly pattern over w, drops slots that are already
// past or taken by a manual post, fills the rest with eligible content in
// queue order and merges the result with the manual posts.
//
// Auto posts are only produced when auto-posting is on and at least one
// auto-eligible platform is connected.
func Project(snap *domain.Snapshot, w window.Window, now time.Time, autoEligible domain.PlatformSet) (Projection, error) {
	loc := timezone.Location(snap.Config.Timezone)

	expanded, err := slot.Expand(snap.WeeklyPattern, w.Start, w.End, loc, &now)
	if err != nil {
		return Projection{}, err
	}

	free := slot.Filter(expanded, slot.BuildKeyIndex(snap.ManualPosts, loc), loc)
	eligible := queue.Eligible(snap.Content)

	p := Projection{
		FreeSlots:     free,
		Expanded:      len(expanded),
		Suppressed:    len(expanded) - len(free),
		Backlog:       len(eligible),
		AutoPlatforms: snap.Config.AutoPlatforms(autoEligible),
		InvalidTimes:  slot.InvalidTimes(snap.WeeklyPattern),
		Location:      loc,
	}

	var auto []domain.UpcomingPost
	if len(p.AutoPlatforms) > 0 {
		assigned := queue.Assign(eligible, free, p.AutoPlatforms)
		auto = assigned.Posts
		p.UnfilledSlots = assigned.UnfilledSlots
		p.Assigned = len(assigned.Posts)
		p.Backlog = assigned.Backlog
	} else {
		// Nothing is published automatically, so every free slot stays open.
		p.UnfilledSlots = free
	}

	p.Posts = Aggregate(snap.ManualPosts, auto, w, now, loc)
	return p, nil
}
