package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type TasksService struct {
	repo  *repository.TasksRepo
	cache DailyCacheInvalidator
}

func NewTasksService(repo *repository.TasksRepo, cache DailyCacheInvalidator) *TasksService {
	return &TasksService{repo: repo, cache: cache}
}

// DeadlineCounts are the task-derived burnout inputs for one instant.
type DeadlineCounts struct {
	Done     int `json:"done"`
	Near     int `json:"near"`     // due within 24h, not completed
	Exceeded int `json:"exceeded"` // due date passed, not completed
}

// CreateTask validates and stores a task. A due date is required; the
// optional difficulty is packed into the description for wire
// compatibility.
func (svc *TasksService) CreateTask(ctx context.Context, userID, title, description string, priority model.Priority, dueDate time.Time, difficulty int) (*model.Task, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if title == "" {
		return nil, errors.New("task title is required")
	}
	if dueDate.IsZero() {
		return nil, errors.New("deadline date and time are required")
	}
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, errors.New("invalid priority level")
	}
	if difficulty != 0 {
		if difficulty < 1 || difficulty > 5 {
			return nil, errors.New("difficulty must be between 1-5")
		}
		description = model.EncodeDifficulty(difficulty, description)
	}

	now := time.Now()
	task := &model.Task{
		TaskID:      uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      model.StatusTodo,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := svc.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetUserTasks returns the user's tasks ordered for display: incomplete
// first, overdue before the rest, then priority, due date and age.
func (svc *TasksService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	tasks, err := svc.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sort.Slice(tasks, func(i, j int) bool {
		iDone := tasks[i].Status == model.StatusCompleted
		jDone := tasks[j].Status == model.StatusCompleted
		if iDone != jDone {
			return !iDone
		}

		if !iDone && !jDone {
			iOverdue := tasks[i].DeadlineExceeded(now)
			jOverdue := tasks[j].DeadlineExceeded(now)
			if iOverdue != jOverdue {
				return iOverdue
			}
		}

		if tasks[i].Priority != tasks[j].Priority {
			return priorityWeight(tasks[i].Priority) > priorityWeight(tasks[j].Priority)
		}

		if !tasks[i].DueDate.IsZero() && !tasks[j].DueDate.IsZero() && !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}

		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// UpdateTask applies a partial update. Empty fields are left untouched.
func (svc *TasksService) UpdateTask(ctx context.Context, taskID, userID string, title, description *string, priority model.Priority, status model.TaskStatus, dueDate *time.Time, difficulty int) error {
	updates := bson.M{}
	if title != nil {
		if *title == "" {
			return errors.New("task title is required")
		}
		updates["title"] = *title
	}
	if description != nil {
		desc := *description
		if difficulty != 0 {
			if difficulty < 1 || difficulty > 5 {
				return errors.New("difficulty must be between 1-5")
			}
			desc = model.EncodeDifficulty(difficulty, desc)
		}
		updates["description"] = desc
	}
	if priority != "" {
		if !priority.Valid() {
			return errors.New("invalid priority level")
		}
		updates["priority"] = priority
	}
	if status != "" {
		if !status.Valid() {
			return errors.New("invalid task status")
		}
		updates["status"] = status
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}
	if len(updates) == 0 {
		return errors.New("no fields to update")
	}
	if err := svc.repo.UpdateTask(ctx, taskID, userID, updates); err != nil {
		return err
	}
	invalidateDailyCache(ctx, svc.cache, userID)
	return nil
}

// CompleteTask marks a task completed.
func (svc *TasksService) CompleteTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	if err := svc.repo.UpdateTask(ctx, taskID, userID, bson.M{"status": model.StatusCompleted}); err != nil {
		return nil, err
	}
	invalidateDailyCache(ctx, svc.cache, userID)
	return svc.repo.GetTask(ctx, taskID, userID)
}

func (svc *TasksService) DeleteTask(ctx context.Context, taskID, userID string) error {
	if err := svc.repo.DeleteTask(ctx, taskID, userID); err != nil {
		return err
	}
	invalidateDailyCache(ctx, svc.cache, userID)
	return nil
}

// DeadlineCounts classifies the user's tasks against now for the burnout
// inputs. The same task is never both near and exceeded.
func (svc *TasksService) DeadlineCounts(ctx context.Context, userID string, now time.Time) (DeadlineCounts, error) {
	tasks, err := svc.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return DeadlineCounts{}, err
	}

	var counts DeadlineCounts
	for _, t := range tasks {
		switch {
		case t.Status == model.StatusCompleted:
			counts.Done++
		case t.DeadlineExceeded(now):
			counts.Exceeded++
		case t.DeadlineNear(now):
			counts.Near++
		}
	}
	return counts, nil
}

// Stats summarizes the user's tasks for the dashboard cards.
func (svc *TasksService) Stats(ctx context.Context, userID string, now time.Time) (*model.TaskStats, error) {
	tasks, err := svc.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &model.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			stats.Completed++
		} else {
			stats.Pending++
		}

		switch t.Priority {
		case model.PriorityHigh:
			stats.HighPriority++
		case model.PriorityMedium:
			stats.MediumPriority++
		case model.PriorityLow:
			stats.LowPriority++
		}

		if t.DueDate.IsZero() || t.Status == model.StatusCompleted {
			continue
		}
		switch {
		case t.DeadlineExceeded(now):
			stats.Overdue++
		case SameLocalDay(t.DueDate, now, now.Location()):
			stats.DueToday++
		case t.DueDate.Sub(now) <= 7*24*time.Hour:
			stats.Upcoming++
		}
	}
	return stats, nil
}

func priorityWeight(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return 3
	case model.PriorityMedium:
		return 2
	case model.PriorityLow:
		return 1
	}
	return 0
}
