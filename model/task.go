package model

import "time"

type Priority string
type TaskStatus string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type Task struct {
	TaskID      string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Title       string     `bson:"title" json:"title" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Priority    Priority   `bson:"priority" json:"priority"`
	Status      TaskStatus `bson:"status" json:"status"`
	DueDate     time.Time  `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// DeadlineExceeded reports whether the task's due date has passed without
// completion.
func (t *Task) DeadlineExceeded(now time.Time) bool {
	if t.Status == StatusCompleted || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(now)
}

// DeadlineNear reports whether an incomplete task is due within the next 24
// hours. A task in the past is exceeded, never near.
func (t *Task) DeadlineNear(now time.Time) bool {
	if t.Status == StatusCompleted || t.DueDate.IsZero() {
		return false
	}
	until := t.DueDate.Sub(now)
	return until > 0 && until <= 24*time.Hour
}

type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`

	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`

	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	Upcoming int `json:"upcoming"` // due in next 7 days
}
