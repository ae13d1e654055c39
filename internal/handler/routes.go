package handler

import "github.com/gin-gonic/gin"

// RegisterBusinessRoutes mounts the per-business endpoints under v1.
func RegisterBusinessRoutes(v1 *gin.RouterGroup, schedule *ScheduleHandler, settings *SettingsHandler) {
	business := v1.Group("/businesses/:businessId")
	{
		business.GET("/upcoming-posts", schedule.HandleUpcomingPosts)
		business.GET("/schedule-slots", schedule.HandleScheduleSlots)
		business.GET("/posted-count", schedule.HandlePostedCount)
		business.GET("/upcoming-count", schedule.HandleUpcomingCount)
		business.POST("/settings/invalidate", settings.HandleInvalidateSettings)
	}
}
