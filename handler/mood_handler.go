package handler

import (
	"strings"
	"time"

	"smartbuddy/dto"
	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	service *usecase.MoodsService
}

func NewMoodHandler(service *usecase.MoodsService) *MoodHandler {
	return &MoodHandler{service: service}
}

func (h *MoodHandler) CreateMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Mood      model.Mood `json:"mood" binding:"required"`
		Score     int        `json:"score" binding:"required"`
		Note      string     `json:"note"`
		CreatedAt *time.Time `json:"created_at"` // optional backdated entry
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), userID.(string), req.Mood, req.Score, req.Note, req.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "the score must be between") ||
			strings.Contains(err.Error(), "invalid mood category") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToMoodEntryResponse(entry))
}

func (h *MoodHandler) GetMoodEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	entries, err := h.service.GetUserEntries(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToMoodEntryResponses(entries))
}

func (h *MoodHandler) UpdateMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	entryID := c.Param("id")
	if entryID == "" {
		utils.BadRequest(c, "Missing entry ID")
		return
	}

	var req struct {
		Mood  model.Mood `json:"mood" binding:"required"`
		Score int        `json:"score" binding:"required"`
		Note  string     `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.service.UpdateEntry(c.Request.Context(), entryID, userID.(string), req.Mood, req.Score, req.Note)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Mood entry not found")
			return
		}
		if strings.Contains(err.Error(), "the score must be between") ||
			strings.Contains(err.Error(), "invalid mood category") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Mood entry updated successfully"})
}

func (h *MoodHandler) DeleteMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	entryID := c.Param("id")
	if entryID == "" {
		utils.BadRequest(c, "Missing entry ID")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), entryID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Mood entry not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Mood entry deleted successfully"})
}

func (h *MoodHandler) ClearMoodEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	deleted, err := h.service.ClearEntries(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"deleted": deleted})
}

func (h *MoodHandler) GetMoodStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID.(string), time.Now(), time.Local)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, stats)
}
