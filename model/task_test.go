package model

import (
	"testing"
	"time"
)

func TestDeadlineNear(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	task := &Task{Status: StatusTodo, DueDate: now.Add(12 * time.Hour)}
	if !task.DeadlineNear(now) {
		t.Error("task due in 12h not near")
	}

	task.DueDate = now.Add(25 * time.Hour)
	if task.DeadlineNear(now) {
		t.Error("task due in 25h counted as near")
	}

	// Exactly at the 24h boundary is still near.
	task.DueDate = now.Add(24 * time.Hour)
	if !task.DeadlineNear(now) {
		t.Error("task due in exactly 24h not near")
	}
}

func TestDeadlineNearAndExceededAreDisjoint(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	overdue := &Task{Status: StatusInProgress, DueDate: now.Add(-13 * time.Hour)}
	if !overdue.DeadlineExceeded(now) {
		t.Error("past-due task not exceeded")
	}
	if overdue.DeadlineNear(now) {
		t.Error("past-due task also counted as near")
	}
}

func TestCompletedTaskHasNoDeadlineState(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	done := &Task{Status: StatusCompleted, DueDate: now.Add(-time.Hour)}
	if done.DeadlineExceeded(now) {
		t.Error("completed task counted as exceeded")
	}
	done.DueDate = now.Add(time.Hour)
	if done.DeadlineNear(now) {
		t.Error("completed task counted as near")
	}
}

func TestDeadlineZeroDueDate(t *testing.T) {
	now := time.Now()
	task := &Task{Status: StatusTodo}
	if task.DeadlineExceeded(now) || task.DeadlineNear(now) {
		t.Error("task without due date has deadline state")
	}
}
