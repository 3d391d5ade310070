package model

import "time"

// CalendarEvent is a read-mostly mirror of an externally synced calendar.
// Rows are written by the sync job and only queried here.
type CalendarEvent struct {
	EventID     string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	EndTime     time.Time `bson:"end_time" json:"end_time"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	AllDay      bool      `bson:"all_day" json:"all_day"`
	Provider    string    `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
