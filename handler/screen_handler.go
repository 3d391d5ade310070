package handler

import (
	"context"
	"log"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/services"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type ScreenHandler struct {
	repo  *repository.ScreenRepo
	cache *services.AnalyticsCache
}

func NewScreenHandler(repo *repository.ScreenRepo, cache *services.AnalyticsCache) *ScreenHandler {
	return &ScreenHandler{repo: repo, cache: cache}
}

// ReportActivity upserts today's screen-time sample from the desktop
// client. One row per user per calendar day; repeated reports overwrite.
func (h *ScreenHandler) ReportActivity(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Date          string `json:"date"` // YYYY-MM-DD, defaults to today
		ScreenMinutes int    `json:"screen_minutes"`
		Breaks        int    `json:"breaks"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.ScreenMinutes < 0 || req.Breaks < 0 {
		utils.BadRequest(c, "Screen minutes and breaks cannot be negative")
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	sample := &model.ScreenActivity{
		UserID:        userID.(string),
		Date:          date,
		ScreenMinutes: req.ScreenMinutes,
		Breaks:        req.Breaks,
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.UpsertSample(c.Request.Context(), sample); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	// New samples change the analytics series for this user.
	if h.cache != nil {
		if err := h.cache.Invalidate(context.Background(), userID.(string)); err != nil {
			log.Printf("Failed to invalidate analytics cache: %v", err)
		}
	}

	utils.Success(c, sample)
}
