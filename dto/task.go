package dto

import (
	"time"

	"smartbuddy/model"
)

type TaskResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	Difficulty   int              `json:"difficulty,omitempty"`
	Priority     model.Priority   `json:"priority"`
	Status       model.TaskStatus `json:"status"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	TimeUntilDue string           `json:"time_until_due,omitempty"` // computed field
}

func ToTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if difficulty, description, ok := model.DecodeDifficulty(task.Description); ok {
		response.Difficulty = difficulty
		response.Description = description
	}

	if !task.DueDate.IsZero() {
		response.DueDate = &task.DueDate
		if task.Status != model.StatusCompleted {
			if task.DueDate.Before(time.Now()) {
				response.TimeUntilDue = "Overdue"
			} else {
				response.TimeUntilDue = time.Until(task.DueDate).Round(time.Hour).String()
			}
		}
	}

	return response
}

func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
