package dto

import (
	"time"

	"smartbuddy/model"
)

type MoodEntryResponse struct {
	ID        string     `json:"id"`
	Mood      model.Mood `json:"mood"`
	Score     int        `json:"score,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToMoodEntryResponse unpacks the stored note into its score and free-text
// parts so clients never see the prefix convention.
func ToMoodEntryResponse(entry *model.MoodEntry) MoodEntryResponse {
	response := MoodEntryResponse{
		ID:        entry.EntryID,
		Mood:      entry.Mood,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}

	if score, note, ok := model.DecodeScore(entry.Note); ok {
		response.Score = score
		response.Note = note
	}

	return response
}

func ToMoodEntryResponses(entries []*model.MoodEntry) []MoodEntryResponse {
	responses := make([]MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToMoodEntryResponse(entry)
	}
	return responses
}
