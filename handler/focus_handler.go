package handler

import (
	"context"
	"strings"
	"time"

	"smartbuddy/dto"
	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type focusProvider interface {
	OpenSession(ctx context.Context, userID string, start time.Time, mode model.FocusMode, deviceInfo string) (*model.FocusSession, error)
	CloseSession(ctx context.Context, sessionID, userID string, end time.Time, elapsedSeconds int) error
	GetUserSessions(ctx context.Context, userID string) ([]*model.FocusSession, error)
	TodayTotalSeconds(ctx context.Context, userID string, now time.Time, loc *time.Location) (int, error)
}

type FocusHandler struct {
	service focusProvider
}

func NewFocusHandler(service *usecase.FocusService) *FocusHandler {
	return &FocusHandler{service: service}
}

// StartSession opens a focus session. The device label is derived from the
// request's User-Agent so session history shows where each session ran.
func (h *FocusHandler) StartSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		FocusMode model.FocusMode `json:"focus_mode"`
	}

	// The body is optional; an empty POST starts a session in the
	// default mode.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	deviceInfo := utils.DeviceLabel(c.Request.UserAgent())
	session, err := h.service.OpenSession(c.Request.Context(), userID.(string), time.Now(), req.FocusMode, deviceInfo)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToFocusSessionResponse(session))
}

// EndSession closes an open session with the elapsed focus time. Clients
// report elapsed seconds directly so a paused timer is not charged for
// wall-clock time.
func (h *FocusHandler) EndSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		utils.BadRequest(c, "Missing session ID")
		return
	}

	var req struct {
		ElapsedSeconds int `json:"elapsed_seconds" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.ElapsedSeconds < 0 {
		utils.BadRequest(c, "Elapsed seconds cannot be negative")
		return
	}

	err := h.service.CloseSession(c.Request.Context(), sessionID, userID.(string), time.Now(), req.ElapsedSeconds)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Focus session not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Focus session closed"})
}

func (h *FocusHandler) GetSessions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	sessions, err := h.service.GetUserSessions(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToFocusSessionResponses(sessions))
}

func (h *FocusHandler) GetTodayTotal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	seconds, err := h.service.TodayTotalSeconds(c.Request.Context(), userID.(string), time.Now(), time.Local)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"total_seconds": seconds})
}
