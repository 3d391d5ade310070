package model

import "testing"

func TestScoreRange(t *testing.T) {
	tests := []struct {
		mood      Mood
		low, high int
	}{
		{MoodVerySad, 1, 4},
		{MoodSad, 1, 4},
		{MoodNeutral, 5, 7},
		{MoodHappy, 8, 10},
		{MoodVeryHappy, 8, 10},
	}
	for _, tt := range tests {
		low, high := tt.mood.ScoreRange()
		if low != tt.low || high != tt.high {
			t.Errorf("%s.ScoreRange() = (%d, %d), want (%d, %d)", tt.mood, low, high, tt.low, tt.high)
		}
	}
}

func TestValidateScoreForMood(t *testing.T) {
	if err := ValidateScoreForMood(MoodHappy, 8); err != nil {
		t.Errorf("happy with 8 rejected: %v", err)
	}
	if err := ValidateScoreForMood(MoodSad, 4); err != nil {
		t.Errorf("sad with 4 rejected: %v", err)
	}
	if err := ValidateScoreForMood(MoodNeutral, 5); err != nil {
		t.Errorf("neutral with 5 rejected: %v", err)
	}
}

func TestValidateScoreForMoodMismatch(t *testing.T) {
	err := ValidateScoreForMood(MoodSad, 5)
	if err == nil {
		t.Fatal("sad with 5 accepted")
	}
	if err.Error() != "for a sad mood, the score must be between 1-4" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if err := ValidateScoreForMood(MoodNeutral, 8); err == nil {
		t.Error("neutral with 8 accepted")
	}
	if err := ValidateScoreForMood(MoodVeryHappy, 7); err == nil {
		t.Error("very_happy with 7 accepted")
	}
}

func TestValidateScoreForMoodInvalidMood(t *testing.T) {
	if err := ValidateScoreForMood(Mood("ecstatic"), 9); err == nil {
		t.Error("unknown mood accepted")
	}
}
