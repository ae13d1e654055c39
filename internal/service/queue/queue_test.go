package queue

import (
	"fmt"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

func readyItem(id string) domain.ContentItem {
	return domain.ContentItem{
		ID:          id,
		Caption:     "caption " + id,
		Category:    "promo",
		Images:      []string{"https://cdn.example.com/" + id + ".png"},
		ReadyToPost: true,
	}
}

func hourlySlots(n int) []time.Time {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	slots := make([]time.Time, n)
	for i := range slots {
		slots[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return slots
}

func TestEligible(t *testing.T) {
	deletedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	notReady := readyItem("not-ready")
	notReady.ReadyToPost = false
	deleted := readyItem("deleted")
	deleted.DeletedAt = &deletedAt
	posted := readyItem("posted")
	posted.HasPostedRecord = true
	manual := readyItem("manual")
	manual.HasManualSchedule = true

	items := []domain.ContentItem{
		readyItem("a"), notReady, deleted, readyItem("b"), posted, manual, readyItem("a"), readyItem("c"),
	}

	got := Eligible(items)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("len(Eligible()) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Eligible()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestAssign(t *testing.T) {
	platforms := domain.NewPlatformSet("linkedin")

	tests := []struct {
		name         string
		contentCount int
		slotCount    int
		wantPosts    int
		wantUnfilled int
		wantBacklog  int
	}{
		{name: "queue shorter than slots", contentCount: 3, slotCount: 5, wantPosts: 3, wantUnfilled: 2, wantBacklog: 0},
		{name: "queue longer than slots", contentCount: 5, slotCount: 2, wantPosts: 2, wantUnfilled: 0, wantBacklog: 3},
		{name: "equal lengths", contentCount: 4, slotCount: 4, wantPosts: 4, wantUnfilled: 0, wantBacklog: 0},
		{name: "no content", contentCount: 0, slotCount: 3, wantPosts: 0, wantUnfilled: 3, wantBacklog: 0},
		{name: "no slots", contentCount: 3, slotCount: 0, wantPosts: 0, wantUnfilled: 0, wantBacklog: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]domain.ContentItem, tt.contentCount)
			for i := range content {
				content[i] = readyItem(fmt.Sprintf("c%d", i))
			}
			slots := hourlySlots(tt.slotCount)

			result := Assign(content, slots, platforms)

			if len(result.Posts) != tt.wantPosts {
				t.Fatalf("len(Posts) = %d, want %d", len(result.Posts), tt.wantPosts)
			}
			if len(result.UnfilledSlots) != tt.wantUnfilled {
				t.Fatalf("len(UnfilledSlots) = %d, want %d", len(result.UnfilledSlots), tt.wantUnfilled)
			}
			for i, s := range result.UnfilledSlots {
				if want := slots[tt.wantPosts+i]; !s.Equal(want) {
					t.Errorf("UnfilledSlots[%d] = %v, want %v", i, s, want)
				}
			}
			if result.Backlog != tt.wantBacklog {
				t.Errorf("Backlog = %d, want %d", result.Backlog, tt.wantBacklog)
			}

			seen := make(map[string]bool)
			for i, p := range result.Posts {
				if !p.Date.Equal(slots[i]) {
					t.Errorf("Posts[%d].Date = %v, want earliest slot %v", i, p.Date, slots[i])
				}
				if p.ContentID != content[i].ID {
					t.Errorf("Posts[%d].ContentID = %q, want %q", i, p.ContentID, content[i].ID)
				}
				if p.Type != domain.PostTypeAuto {
					t.Errorf("Posts[%d].Type = %q, want auto", i, p.Type)
				}
				if p.Title != content[i].Caption || p.Category != content[i].Category {
					t.Errorf("Posts[%d] title/category = %q/%q", i, p.Title, p.Category)
				}
				if len(p.Platforms) != 1 || p.Platforms[0] != "linkedin" {
					t.Errorf("Posts[%d].Platforms = %v, want [linkedin]", i, p.Platforms)
				}
				if seen[p.ContentID] {
					t.Errorf("content %q assigned twice", p.ContentID)
				}
				seen[p.ContentID] = true
			}
		})
	}
}

func TestAssign_PostsDoNotShareSlices(t *testing.T) {
	platforms := domain.NewPlatformSet("linkedin")
	content := []domain.ContentItem{readyItem("a"), readyItem("b")}

	result := Assign(content, hourlySlots(2), platforms)

	result.Posts[0].Platforms[0] = "mutated"
	if result.Posts[1].Platforms[0] != "linkedin" || platforms[0] != "linkedin" {
		t.Error("platform slices are shared between posts")
	}
	result.Posts[0].Images[0] = "mutated"
	if content[0].Images[0] == "mutated" {
		t.Error("images slice is shared with the content item")
	}
}
