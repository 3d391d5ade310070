package handler

import (
	"context"

	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type PomodoroHandler struct {
	registry *usecase.TimerRegistry
}

func NewPomodoroHandler(registry *usecase.TimerRegistry) *PomodoroHandler {
	return &PomodoroHandler{registry: registry}
}

func timerState(t *usecase.PomodoroTimer) gin.H {
	return gin.H{
		"phase":             t.Phase(),
		"remaining_seconds": t.Remaining(),
		"running":           t.Running(),
		"session_count":     t.SessionCount(),
	}
}

// GetTimerState reports the user's timer. A user who never started one gets
// the default idle focus state.
func (h *PomodoroHandler) GetTimerState(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	timer, ok := h.registry.Get(userID.(string))
	if !ok {
		utils.Success(c, gin.H{
			"phase":             usecase.PhaseFocus,
			"remaining_seconds": usecase.MinFocusMinutes * 60,
			"running":           false,
			"session_count":     0,
		})
		return
	}
	utils.Success(c, timerState(timer))
}

// StartTimer starts or resumes the user's timer, applying any duration
// settings first. The tick loop outlives the request, so it runs on a
// background context rather than the request's.
func (h *PomodoroHandler) StartTimer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		FocusMinutes int             `json:"focus_minutes"`
		BreakMinutes int             `json:"break_minutes"`
		FocusMode    model.FocusMode `json:"focus_mode"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	deviceInfo := utils.DeviceLabel(c.Request.UserAgent())
	timer := h.registry.TimerFor(userID.(string), req.FocusMode, deviceInfo)

	if req.FocusMinutes != 0 {
		if err := timer.SetFocusDuration(req.FocusMinutes); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	}
	if req.BreakMinutes != 0 {
		if err := timer.SetBreakDuration(req.BreakMinutes); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	}

	if err := timer.Start(context.Background()); err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.Success(c, timerState(timer))
}

// PauseTimer stops the countdown without closing the open focus session.
func (h *PomodoroHandler) PauseTimer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	timer, ok := h.registry.Get(userID.(string))
	if !ok {
		utils.NotFound(c, "No timer to pause")
		return
	}
	timer.Pause()
	utils.Success(c, timerState(timer))
}

// CompleteTimer ends the running focus phase early, reporting the elapsed
// seconds, and moves the timer to its earned break.
func (h *PomodoroHandler) CompleteTimer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	timer, ok := h.registry.Get(userID.(string))
	if !ok {
		utils.NotFound(c, "No timer to complete")
		return
	}
	if err := timer.CompleteEarly(context.Background()); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, timerState(timer))
}

// SkipTimer ends a break or long rest and returns to focus.
func (h *PomodoroHandler) SkipTimer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	timer, ok := h.registry.Get(userID.(string))
	if !ok {
		utils.NotFound(c, "No timer to skip")
		return
	}
	if err := timer.Skip(); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, timerState(timer))
}

// ResetTimer closes any open focus session with the elapsed time and returns
// the timer to a full focus countdown.
func (h *PomodoroHandler) ResetTimer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	timer, ok := h.registry.Get(userID.(string))
	if !ok {
		utils.NotFound(c, "No timer to reset")
		return
	}
	if err := timer.Reset(context.Background()); err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.Success(c, timerState(timer))
}
