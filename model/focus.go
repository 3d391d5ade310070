package model

import "time"

type FocusMode string

const (
	FocusModeLight  FocusMode = "light"
	FocusModeMedium FocusMode = "medium"
	FocusModeDeep   FocusMode = "deep"
)

// FocusSession is one Pomodoro work interval tracked start-to-finish. A
// session with a zero EndTime is still open.
type FocusSession struct {
	SessionID       string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	StartTime       time.Time `bson:"start_time" json:"start_time"`
	EndTime         time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
	DurationSeconds int       `bson:"duration_seconds" json:"duration_seconds"`
	FocusMode       FocusMode `bson:"focus_mode" json:"focus_mode"`
	DeviceInfo      string    `bson:"device_info,omitempty" json:"device_info,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

func (s *FocusSession) Open() bool {
	return s.EndTime.IsZero()
}
