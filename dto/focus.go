package dto

import (
	"time"

	"smartbuddy/model"
)

type FocusSessionResponse struct {
	ID              string          `json:"id"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	DurationSeconds int             `json:"duration_seconds"`
	FocusMode       model.FocusMode `json:"focus_mode"`
	DeviceInfo      string          `json:"device_info,omitempty"`
	Open            bool            `json:"open"`
}

func ToFocusSessionResponse(session *model.FocusSession) FocusSessionResponse {
	response := FocusSessionResponse{
		ID:              session.SessionID,
		StartTime:       session.StartTime,
		DurationSeconds: session.DurationSeconds,
		FocusMode:       session.FocusMode,
		DeviceInfo:      session.DeviceInfo,
		Open:            session.Open(),
	}

	if !session.EndTime.IsZero() {
		response.EndTime = &session.EndTime
	}

	return response
}

func ToFocusSessionResponses(sessions []*model.FocusSession) []FocusSessionResponse {
	responses := make([]FocusSessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = ToFocusSessionResponse(session)
	}
	return responses
}
