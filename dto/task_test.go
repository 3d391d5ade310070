package dto

import (
	"testing"
	"time"

	"smartbuddy/model"
)

func TestToTaskResponseUnpacksDifficulty(t *testing.T) {
	task := &model.Task{
		TaskID:      "t1",
		Title:       "Write report",
		Description: "DIFFICULTY:3|Quarterly numbers",
		Priority:    model.PriorityHigh,
		Status:      model.StatusTodo,
	}

	response := ToTaskResponse(task)
	if response.Difficulty != 3 {
		t.Errorf("Difficulty = %d, want 3", response.Difficulty)
	}
	if response.Description != "Quarterly numbers" {
		t.Errorf("Description = %q, prefix leaked to client", response.Description)
	}
}

func TestToTaskResponseOverdue(t *testing.T) {
	task := &model.Task{
		TaskID:  "t2",
		Title:   "Late task",
		Status:  model.StatusInProgress,
		DueDate: time.Now().Add(-2 * time.Hour),
	}

	response := ToTaskResponse(task)
	if response.TimeUntilDue != "Overdue" {
		t.Errorf("TimeUntilDue = %q, want Overdue", response.TimeUntilDue)
	}
	if response.DueDate == nil {
		t.Error("DueDate dropped")
	}
}

func TestToTaskResponseCompletedHasNoCountdown(t *testing.T) {
	task := &model.Task{
		TaskID:  "t3",
		Title:   "Done task",
		Status:  model.StatusCompleted,
		DueDate: time.Now().Add(-2 * time.Hour),
	}

	if response := ToTaskResponse(task); response.TimeUntilDue != "" {
		t.Errorf("TimeUntilDue = %q for a completed task", response.TimeUntilDue)
	}
}

func TestToMoodEntryResponse(t *testing.T) {
	entry := &model.MoodEntry{
		EntryID: "m1",
		Mood:    model.MoodHappy,
		Note:    "SCORE:9|Great run",
	}

	response := ToMoodEntryResponse(entry)
	if response.Score != 9 || response.Note != "Great run" {
		t.Errorf("response = %+v, want score 9 note %q", response, "Great run")
	}
}

func TestToMoodEntryResponsePlainNote(t *testing.T) {
	entry := &model.MoodEntry{
		EntryID: "m2",
		Mood:    model.MoodNeutral,
		Note:    "imported entry without score",
	}

	response := ToMoodEntryResponse(entry)
	if response.Score != 0 {
		t.Errorf("Score = %d for unscored note", response.Score)
	}
	if response.Note != entry.Note {
		t.Errorf("Note = %q, want unchanged", response.Note)
	}
}
