package handler

import (
	"strconv"
	"time"

	"smartbuddy/dto"
	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	service *usecase.EventsService
}

func NewEventsHandler(service *usecase.EventsService) *EventsHandler {
	return &EventsHandler{service: service}
}

// GetUpcomingEvents serves one page of events starting within the lookahead
// window. Defaults: 30 days ahead, page 1, 5 events per page.
func (h *EventsHandler) GetUpcomingEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		utils.BadRequest(c, "Invalid days parameter, must be positive")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		utils.BadRequest(c, "Invalid page parameter, must be positive")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "5"))
	if err != nil || pageSize <= 0 {
		utils.BadRequest(c, "Invalid page_size parameter, must be positive")
		return
	}

	result, err := h.service.Upcoming(c.Request.Context(), userID.(string), time.Now(), days, page, pageSize)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"events":       dto.ToCalendarEventResponses(result.Events),
		"page":         result.Page,
		"total_pages":  result.TotalPages,
		"has_next":     result.HasNext,
		"has_previous": result.HasPrevious,
	})
}

// SyncEvent upserts one event row from the calendar sync job.
func (h *EventsHandler) SyncEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var event model.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if event.Title == "" || event.StartTime.IsZero() {
		utils.BadRequest(c, "Event title and start time are required")
		return
	}

	event.UserID = userID.(string)
	if err := h.service.Sync(c.Request.Context(), &event); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToCalendarEventResponse(&event))
}
