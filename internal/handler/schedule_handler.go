package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/count"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/upcoming"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/window"
)

type ScheduleHandler struct {
	upcomingService *upcoming.Service
	countService    *count.Service
}

func NewScheduleHandler(upcomingService *upcoming.Service, countService *count.Service) *ScheduleHandler {
	return &ScheduleHandler{
		upcomingService: upcomingService,
		countService:    countService,
	}
}

type UpcomingPostsResponse struct {
	Data []domain.UpcomingPost `json:"data"`
}

type ScheduleSlot struct {
	Date time.Time `json:"date"`
}

type ScheduleSlotsResponse struct {
	Data        []ScheduleSlot `json:"data"`
	Timezone    string         `json:"timezone"`
	WindowStart time.Time      `json:"window_start"`
	WindowEnd   time.Time      `json:"window_end"`
}

func (h *ScheduleHandler) HandleUpcomingPosts(c *gin.Context) {
	businessID, start, end, ok := bindRange(c)
	if !ok {
		return
	}

	result, err := h.upcomingService.UpcomingPosts(c.Request.Context(), upcoming.Query{
		BusinessID: businessID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpcomingPostsResponse{Data: result.Posts})
}

func (h *ScheduleHandler) HandleScheduleSlots(c *gin.Context) {
	businessID, start, end, ok := bindRange(c)
	if !ok {
		return
	}

	result, err := h.upcomingService.ScheduleSlots(c.Request.Context(), upcoming.Query{
		BusinessID: businessID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	slots := make([]ScheduleSlot, len(result.Slots))
	for i, t := range result.Slots {
		slots[i] = ScheduleSlot{Date: t}
	}

	c.JSON(http.StatusOK, ScheduleSlotsResponse{
		Data:        slots,
		Timezone:    result.Timezone,
		WindowStart: result.Window.Start,
		WindowEnd:   result.Window.End,
	})
}

func (h *ScheduleHandler) HandlePostedCount(c *gin.Context) {
	businessID, start, end, ok := bindRange(c)
	if !ok {
		return
	}

	result, err := h.countService.PostedCount(c.Request.Context(), count.Query{
		BusinessID: businessID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScheduleHandler) HandleUpcomingCount(c *gin.Context) {
	businessID, start, end, ok := bindRange(c)
	if !ok {
		return
	}

	result, err := h.countService.UpcomingCount(c.Request.Context(), count.Query{
		BusinessID: businessID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// bindRange reads the business id and the optional date range. It writes
// the error response itself and reports false when the request is invalid.
func bindRange(c *gin.Context) (string, *window.Bound, *window.Bound, bool) {
	var uri businessURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid business id")
		return "", nil, nil, false
	}

	var query dateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return "", nil, nil, false
	}

	start, err := window.ParseBound(query.DateStart)
	if err != nil {
		respondServiceError(c, err)
		return "", nil, nil, false
	}

	end, err := window.ParseBound(query.DateEnd)
	if err != nil {
		respondServiceError(c, err)
		return "", nil, nil, false
	}

	return uri.BusinessID, start, end, true
}
