package handler

import (
	"context"
	"strconv"
	"time"

	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type analyticsProvider interface {
	DailyData(ctx context.Context, userID string, days int, now time.Time, loc *time.Location) ([]model.DailyAnalytics, error)
	BurnoutReport(ctx context.Context, userID string, weekStart, now time.Time, loc *time.Location) (*usecase.BurnoutReport, error)
}

type AnalyticsHandler struct {
	service analyticsProvider
}

func NewAnalyticsHandler(service *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetDailyData serves the per-day analytics series. The window is clamped
// to 7-90 days server-side, so an out-of-range value is not an error.
func (h *AnalyticsHandler) GetDailyData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		utils.BadRequest(c, "Invalid days parameter")
		return
	}

	series, err := h.service.DailyData(c.Request.Context(), userID.(string), days, time.Now(), time.Local)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"daily_data": series})
}

// GetBurnoutReport serves the derived burnout payload. An optional
// week_start (YYYY-MM-DD) selects the week analyzed for trends; it defaults
// to the current week's Monday.
func (h *AnalyticsHandler) GetBurnoutReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	now := time.Now()
	weekStart := usecase.WeekStart(now, time.Local)
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.BadRequest(c, "Invalid week_start, expected YYYY-MM-DD")
			return
		}
		weekStart = usecase.WeekStart(parsed, time.Local)
	}

	report, err := h.service.BurnoutReport(c.Request.Context(), userID.(string), weekStart, now, time.Local)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, report)
}
