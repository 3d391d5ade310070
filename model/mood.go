package model

import (
	"errors"
	"time"
)

type Mood string

const (
	MoodVerySad   Mood = "very_sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very_happy"
)

type MoodEntry struct {
	EntryID   string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Mood      Mood      `bson:"mood" json:"mood" binding:"required"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (m Mood) Valid() bool {
	switch m {
	case MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

// ScoreRange returns the inclusive numeric score range implied by a mood
// category. Sad moods map to 1-4, neutral to 5-7, happy moods to 8-10.
func (m Mood) ScoreRange() (low, high int) {
	switch m {
	case MoodVerySad, MoodSad:
		return 1, 4
	case MoodNeutral:
		return 5, 7
	case MoodHappy, MoodVeryHappy:
		return 8, 10
	}
	return 0, 0
}

// ValidateScoreForMood checks that a numeric score falls inside the range
// implied by the selected mood category. Enforced at entry creation and
// update, never retroactively.
func ValidateScoreForMood(m Mood, score int) error {
	if !m.Valid() {
		return errors.New("invalid mood category")
	}
	low, high := m.ScoreRange()
	if score < low || score > high {
		switch m {
		case MoodVerySad, MoodSad:
			return errors.New("for a sad mood, the score must be between 1-4")
		case MoodNeutral:
			return errors.New("for a neutral mood, the score must be between 5-7")
		default:
			return errors.New("for a happy mood, the score must be between 8-10")
		}
	}
	return nil
}
