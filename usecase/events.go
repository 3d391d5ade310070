package usecase

import (
	"context"
	"errors"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"

	"github.com/google/uuid"
)

type EventsService struct {
	repo *repository.EventsRepo
}

func NewEventsService(repo *repository.EventsRepo) *EventsService {
	return &EventsService{repo: repo}
}

// UpcomingPage is the paginated envelope the calendar widget consumes.
type UpcomingPage struct {
	Events      []*model.CalendarEvent `json:"events"`
	Page        int                    `json:"page"`
	TotalPages  int                    `json:"total_pages"`
	HasNext     bool                   `json:"has_next"`
	HasPrevious bool                   `json:"has_previous"`
}

// Upcoming returns one page of events starting within the next `days` days.
func (svc *EventsService) Upcoming(ctx context.Context, userID string, now time.Time, days, page, pageSize int) (*UpcomingPage, error) {
	if days <= 0 {
		days = 30
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 5
	}
	if pageSize > 100 {
		return nil, errors.New("page size cannot exceed 100")
	}

	events, total, err := svc.repo.GetUpcoming(ctx, userID, now, days, page, pageSize)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*model.CalendarEvent{}
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return &UpcomingPage{
		Events:      events,
		Page:        page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// Sync upserts one event row reported by the calendar sync job. Missing IDs
// get one assigned so repeated syncs of the same provider event overwrite
// rather than duplicate.
func (svc *EventsService) Sync(ctx context.Context, event *model.CalendarEvent) error {
	if event.UserID == "" {
		return errors.New("user ID is required")
	}
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return svc.repo.UpsertEvent(ctx, event)
}

// CountUpcoming counts events within the window, for the burnout inputs.
func (svc *EventsService) CountUpcoming(ctx context.Context, userID string, now time.Time, days int) (int, error) {
	return svc.repo.CountUpcoming(ctx, userID, now, days)
}
