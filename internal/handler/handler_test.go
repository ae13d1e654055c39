package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/count"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/snapshot"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/upcoming"
)

var (
	testPlatforms    = domain.NewPlatformSet("facebook", "instagram", "linkedin", "tiktok", "twitter")
	testAutoEligible = domain.NewPlatformSet("linkedin")
	// Wednesday 2025-01-01 00:00 UTC.
	testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newTestRouter(t *testing.T, repo domain.ScheduleRepository, invalidator domain.SettingsInvalidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loader := snapshot.NewLoader(repo)
	clock := func() time.Time { return testNow }

	upcomingService := upcoming.NewService(loader, testAutoEligible, 14, nil, upcoming.WithClock(clock))
	countService := count.NewService(loader, count.NewCounter(testPlatforms, testAutoEligible), nil, nil, count.WithClock(clock))

	r := gin.New()
	RegisterBusinessRoutes(r.Group("/api/v1"),
		NewScheduleHandler(upcomingService, countService),
		NewSettingsHandler(invalidator),
	)
	return r
}

func utcConfig() *domain.BusinessScheduleConfig {
	return &domain.BusinessScheduleConfig{
		BusinessID:         "biz-1",
		Timezone:           "UTC",
		IsAutoPosting:      true,
		ConnectedPlatforms: domain.NewPlatformSet("linkedin"),
	}
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestHandleUpcomingPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockScheduleRepository(ctrl)

	repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(utcConfig(), nil)
	repo.EXPECT().GetWeeklyPattern(gomock.Any(), "biz-1").Return(domain.WeeklyPattern{
		{Day: domain.Monday, IsActive: true, Times: []string{"09:00"}},
	}, nil)
	repo.EXPECT().ListContent(gomock.Any(), "biz-1").Return([]domain.ContentItem{
		{ID: "c1", Caption: "hello", Category: "promo", Images: []string{"a.png"}, ReadyToPost: true},
	}, nil)
	repo.EXPECT().ListManualPosts(gomock.Any(), "biz-1", gomock.Any()).Return([]domain.ManualPost{
		{ID: "m1", Date: time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), Platforms: []domain.PlatformID{"instagram"}, ContentRef: "c9", Caption: "launch"},
	}, nil)

	r := newTestRouter(t, repo, nil)
	w := serve(r, http.MethodGet, "/api/v1/businesses/biz-1/upcoming-posts?dateStart=2025-01-06&dateEnd=2025-01-07")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			Date      time.Time `json:"date"`
			Type      string    `json:"type"`
			Title     string    `json:"title"`
			Platforms []string  `json:"platforms"`
			ContentID string    `json:"content_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("len(data) = %d, want 2: %s", len(resp.Data), w.Body.String())
	}
	if resp.Data[0].Type != "auto" || resp.Data[0].ContentID != "c1" || resp.Data[0].Title != "hello" {
		t.Errorf("data[0] = %+v, want auto post of c1", resp.Data[0])
	}
	if resp.Data[1].Type != "manual" || resp.Data[1].Title != "launch" {
		t.Errorf("data[1] = %+v, want manual post", resp.Data[1])
	}
}

func TestHandleUpcomingPosts_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(repo *domain.MockScheduleRepository)
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed date",
			target:     "/api/v1/businesses/biz-1/upcoming-posts?dateStart=yesterday",
			setup:      func(*domain.MockScheduleRepository) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:   "inverted range",
			target: "/api/v1/businesses/biz-1/upcoming-posts?dateStart=2025-01-10&dateEnd=2025-01-01",
			setup: func(repo *domain.MockScheduleRepository) {
				repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(utcConfig(), nil)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:   "window longer than the limit",
			target: "/api/v1/businesses/biz-1/upcoming-posts?dateStart=2025-01-01&dateEnd=9999-12-31",
			setup: func(repo *domain.MockScheduleRepository) {
				repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(utcConfig(), nil)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:   "unknown business",
			target: "/api/v1/businesses/nope/upcoming-posts",
			setup: func(repo *domain.MockScheduleRepository) {
				repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "nope").Return(nil, domain.ErrBusinessNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name:   "repository failure",
			target: "/api/v1/businesses/biz-1/upcoming-posts",
			setup: func(repo *domain.MockScheduleRepository) {
				repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "processing_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockScheduleRepository(ctrl)
			tt.setup(repo)

			w := serve(newTestRouter(t, repo, nil), http.MethodGet, tt.target)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if got := decodeError(t, w).Error; got != tt.wantError {
				t.Errorf("error = %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestHandleScheduleSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockScheduleRepository(ctrl)

	repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(utcConfig(), nil)
	repo.EXPECT().GetWeeklyPattern(gomock.Any(), "biz-1").Return(domain.WeeklyPattern{
		{Day: domain.Monday, IsActive: true, Times: []string{"09:00", "15:00"}},
	}, nil)
	repo.EXPECT().ListManualPosts(gomock.Any(), "biz-1", gomock.Any()).Return([]domain.ManualPost{
		{ID: "m1", Date: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)},
	}, nil)

	w := serve(newTestRouter(t, repo, nil), http.MethodGet, "/api/v1/businesses/biz-1/schedule-slots?dateStart=2025-01-06&dateEnd=2025-01-06")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp ScheduleSlotsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(resp.Data) != 1 || !resp.Data[0].Date.Equal(time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("data = %+v, want the single 15:00 slot", resp.Data)
	}
	if resp.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", resp.Timezone)
	}
}

func TestHandleCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockScheduleRepository(ctrl)

	repo.EXPECT().GetBusinessScheduleConfig(gomock.Any(), "biz-1").Return(utcConfig(), nil).Times(2)
	repo.EXPECT().ListPostedRecords(gomock.Any(), "biz-1", gomock.Any()).Return([]domain.PostedRecord{
		{Platform: "linkedin", CreatedAt: testNow.Add(-time.Hour)},
	}, nil)
	repo.EXPECT().ListManualPosts(gomock.Any(), "biz-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListContent(gomock.Any(), "biz-1").Return([]domain.ContentItem{
		{ID: "c1", ReadyToPost: true},
		{ID: "c2", ReadyToPost: true},
	}, nil)

	r := newTestRouter(t, repo, nil)

	tests := []struct {
		target       string
		wantTotal    int
		wantLinkedIn int
	}{
		{target: "/api/v1/businesses/biz-1/posted-count", wantTotal: 1, wantLinkedIn: 1},
		{target: "/api/v1/businesses/biz-1/upcoming-count", wantTotal: 2, wantLinkedIn: 2},
	}

	for _, tt := range tests {
		w := serve(r, http.MethodGet, tt.target)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200: %s", tt.target, w.Code, w.Body.String())
		}

		var resp struct {
			Total  int            `json:"total"`
			Detail map[string]int `json:"detail"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Total != tt.wantTotal {
			t.Errorf("%s total = %d, want %d", tt.target, resp.Total, tt.wantTotal)
		}
		if len(resp.Detail) != len(testPlatforms) {
			t.Errorf("%s detail = %v, want every platform", tt.target, resp.Detail)
		}
		if resp.Detail["linkedin"] != tt.wantLinkedIn {
			t.Errorf("%s detail[linkedin] = %d, want %d", tt.target, resp.Detail["linkedin"], tt.wantLinkedIn)
		}
	}
}

func TestHandleInvalidateSettings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "cache failure", err: errors.New("redis down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockScheduleRepository(ctrl)
			invalidator := domain.NewMockSettingsInvalidator(ctrl)
			invalidator.EXPECT().InvalidateSettings(gomock.Any(), "biz-1").Return(tt.err)

			w := serve(newTestRouter(t, repo, invalidator), http.MethodPost, "/api/v1/businesses/biz-1/settings/invalidate")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
