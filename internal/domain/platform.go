package domain

// PlatformID identifies a social platform a post can be published to.
type PlatformID string

func (p PlatformID) String() string {
	return string(p)
}

// PlatformSet is an ordered, duplicate-free list of platforms.
// Order is preserved so that zero-seeded count maps and auto-post platform
// lists come out the same way on every call.
type PlatformSet []PlatformID

func NewPlatformSet(ids ...PlatformID) PlatformSet {
	seen := make(map[PlatformID]struct{}, len(ids))
	set := make(PlatformSet, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set
}

func (s PlatformSet) Contains(id PlatformID) bool {
	for _, p := range s {
		if p == id {
			return true
		}
	}
	return false
}

// Intersect returns the members of s that are also in other, in s's order.
func (s PlatformSet) Intersect(other PlatformSet) PlatformSet {
	out := make(PlatformSet, 0, len(s))
	for _, p := range s {
		if other.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s PlatformSet) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = string(p)
	}
	return out
}
