package count

import (
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// Counter tallies posts per platform. Every platform in platforms appears in
// the result, and platforms outside it are ignored.
type Counter struct {
	platforms    domain.PlatformSet
	autoEligible domain.PlatformSet
}

func NewCounter(platforms, autoEligible domain.PlatformSet) *Counter {
	return &Counter{
		platforms:    platforms,
		autoEligible: autoEligible,
	}
}

func (c *Counter) Platforms() domain.PlatformSet {
	return c.platforms
}

// Posted counts the records created inside rng.
func (c *Counter) Posted(records []domain.PostedRecord, rng domain.DateRange) (domain.PlatformCount, error) {
	if err := rng.Validate(); err != nil {
		return domain.PlatformCount{}, err
	}

	detail := c.seed()
	for _, r := range records {
		if !rng.Contains(r.CreatedAt) {
			continue
		}
		if _, ok := detail[r.Platform]; ok {
			detail[r.Platform]++
		}
	}
	return total(detail), nil
}

// Upcoming counts each manual post inside rng once per distinct platform it
// targets. When the business auto-posts, unassignedReady is added to every
// connected auto-eligible platform as an estimate of the auto posts still to
// go out.
func (c *Counter) Upcoming(
	manual []domain.ManualPost,
	unassignedReady int,
	cfg domain.BusinessScheduleConfig,
	rng domain.DateRange,
) (domain.PlatformCount, error) {
	if err := rng.Validate(); err != nil {
		return domain.PlatformCount{}, err
	}

	detail := c.seed()
	for _, m := range manual {
		if !rng.Contains(m.Date) {
			continue
		}
		for _, p := range domain.NewPlatformSet(m.Platforms...) {
			if _, ok := detail[p]; ok {
				detail[p]++
			}
		}
	}

	if unassignedReady > 0 {
		for _, p := range cfg.AutoPlatforms(c.autoEligible) {
			if _, ok := detail[p]; ok {
				detail[p] += unassignedReady
			}
		}
	}

	return total(detail), nil
}

func (c *Counter) seed() map[domain.PlatformID]int {
	detail := make(map[domain.PlatformID]int, len(c.platforms))
	for _, p := range c.platforms {
		detail[p] = 0
	}
	return detail
}

func total(detail map[domain.PlatformID]int) domain.PlatformCount {
	sum := 0
	for _, n := range detail {
		sum += n
	}
	return domain.PlatformCount{Total: sum, Detail: detail}
}
