package dto

import (
	"time"

	"smartbuddy/model"
)

type CalendarEventResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	AllDay    bool      `json:"all_day"`
	Provider  string    `json:"provider,omitempty"`
}

func ToCalendarEventResponse(event *model.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:        event.EventID,
		Title:     event.Title,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Location:  event.Location,
		AllDay:    event.AllDay,
		Provider:  event.Provider,
	}
}

func ToCalendarEventResponses(events []*model.CalendarEvent) []CalendarEventResponse {
	responses := make([]CalendarEventResponse, len(events))
	for i, event := range events {
		responses[i] = ToCalendarEventResponse(event)
	}
	return responses
}
