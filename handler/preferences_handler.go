package handler

import (
	"io"
	"log"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/services"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	repo        *repository.PreferencesRepo
	broadcaster *services.PreferenceBroadcaster
}

func NewPreferencesHandler(repo *repository.PreferencesRepo, broadcaster *services.PreferenceBroadcaster) *PreferencesHandler {
	return &PreferencesHandler{repo: repo, broadcaster: broadcaster}
}

// GetPreferences returns the stored settings, falling back to defaults for
// users who never saved any.
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	prefs, err := h.repo.Load(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, prefs)
}

// UpdatePreferences saves the settings and fans the change out to every
// open client of the same account.
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Theme           string `json:"theme" binding:"required"`
		BuddyName       string `json:"buddy_name" binding:"required"`
		BuddyAppearance string `json:"buddy_appearance" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	prefs := &model.Preferences{
		UserID:          userID.(string),
		Theme:           req.Theme,
		BuddyName:       req.BuddyName,
		BuddyAppearance: req.BuddyAppearance,
		UpdatedAt:       time.Now(),
	}

	if err := h.repo.Save(c.Request.Context(), prefs); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	if h.broadcaster != nil {
		if err := h.broadcaster.Publish(c.Request.Context(), prefs); err != nil {
			log.Printf("Failed to broadcast preference change: %v", err)
		}
	}

	utils.Success(c, prefs)
}

// StreamPreferences pushes preference changes to the client as they
// happen, one SSE event per save from any of the account's open views.
func (h *PreferencesHandler) StreamPreferences(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if h.broadcaster == nil {
		utils.InternalError(c, "Preference streaming is not available")
		return
	}

	changes := make(chan *model.Preferences, 4)
	unsubscribe := h.broadcaster.OnChange(c.Request.Context(), userID.(string), func(prefs *model.Preferences) {
		select {
		case changes <- prefs:
		default: // slow consumer drops intermediate updates
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case prefs := <-changes:
			c.SSEvent("preferences", prefs)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
