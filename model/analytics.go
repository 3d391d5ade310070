package model

import "time"

// DailyAnalytics is one backend-computed row per calendar day, served for a
// rolling window of 7-90 days. Field names match the wire contract the
// existing clients chart from.
type DailyAnalytics struct {
	Date           string  `json:"date"`           // YYYY-MM-DD, local calendar date
	FocusTime      int     `json:"focusTime"`      // minutes
	TasksCompleted int     `json:"tasksCompleted"`
	Mood           float64 `json:"mood"`           // 0 when no scored entries
	ScreenTime     int     `json:"screenTime"`     // minutes
	Breaks         int     `json:"breaks"`
}

// ScreenActivity is a per-day sample reported by the desktop client: total
// screen minutes and breaks taken. One row per user per calendar day.
type ScreenActivity struct {
	ActivityID    string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Date          string    `bson:"date" json:"date"` // YYYY-MM-DD
	ScreenMinutes int       `bson:"screen_minutes" json:"screen_minutes"`
	Breaks        int       `bson:"breaks" json:"breaks"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type MoodCount struct {
	Mood  Mood `json:"mood"`
	Count int  `json:"count"`
}

type DailyMoodBreakdown struct {
	Date    string   `json:"date"`
	Average *float64 `json:"average"` // nil when the day has no scored entries
	Count   int      `json:"count"`
}

type WeeklyMoodBreakdown struct {
	WeekStart string   `json:"week_start"`
	WeekEnd   string   `json:"week_end"`
	Average   *float64 `json:"average"`
	Count     int      `json:"count"`
}

type MoodPattern struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type MoodStats struct {
	MoodCounts []MoodCount `json:"mood_counts"`
	Averages   struct {
		Weekly  float64 `json:"weekly"`
		Monthly float64 `json:"monthly"`
		Overall float64 `json:"overall"`
	} `json:"averages"`
	DailyBreakdown  []DailyMoodBreakdown  `json:"daily_breakdown"`
	WeeklyBreakdown []WeeklyMoodBreakdown `json:"weekly_breakdown"`
	Patterns        []MoodPattern         `json:"patterns"`
	TotalEntries    int                   `json:"total_entries"`
	StreakDays      int                   `json:"streak_days"`
}
