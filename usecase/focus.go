package usecase

import (
	"context"
	"errors"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/utils"

	"github.com/google/uuid"
)

type FocusService struct {
	repo  *repository.FocusSessionsRepo
	cache DailyCacheInvalidator
}

func NewFocusService(repo *repository.FocusSessionsRepo, cache DailyCacheInvalidator) *FocusService {
	return &FocusService{repo: repo, cache: cache}
}

// OpenSession creates a focus session record at timer start.
func (svc *FocusService) OpenSession(ctx context.Context, userID string, start time.Time, mode model.FocusMode, deviceInfo string) (*model.FocusSession, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if start.IsZero() {
		return nil, errors.New("start time is required")
	}
	if mode == "" {
		mode = model.FocusModeMedium
	}

	session := &model.FocusSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		StartTime:  start,
		FocusMode:  mode,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
	}
	if err := svc.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	utils.FocusSessionsOpened.Inc()
	return session, nil
}

// CloseSession reports the elapsed seconds when the timer completes, is
// ended early or reset. A plain pause never closes the session.
func (svc *FocusService) CloseSession(ctx context.Context, sessionID, userID string, end time.Time, elapsedSeconds int) error {
	if elapsedSeconds < 0 {
		return errors.New("elapsed seconds cannot be negative")
	}
	if err := svc.repo.CloseSession(ctx, sessionID, userID, end, elapsedSeconds); err != nil {
		return err
	}
	utils.FocusSecondsRecorded.Add(float64(elapsedSeconds))
	invalidateDailyCache(ctx, svc.cache, userID)
	return nil
}

func (svc *FocusService) GetUserSessions(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	return svc.repo.GetUserSessions(ctx, userID)
}

// TodayTotalSeconds sums the closed sessions that started today, local
// time. The client keeps a localStorage fallback for offline use; this is
// the authoritative figure.
func (svc *FocusService) TodayTotalSeconds(ctx context.Context, userID string, now time.Time, loc *time.Location) (int, error) {
	sessions, err := svc.repo.GetSessionsSince(ctx, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return 0, err
	}

	total := 0
	for _, s := range sessions {
		if SameLocalDay(s.StartTime, now, loc) {
			total += s.DurationSeconds
		}
	}
	return total, nil
}

// Recorder binds the Pomodoro engine's session lifecycle to one user's
// persisted records.
type Recorder struct {
	svc        *FocusService
	userID     string
	mode       model.FocusMode
	deviceInfo string
}

func (svc *FocusService) RecorderFor(userID string, mode model.FocusMode, deviceInfo string) *Recorder {
	return &Recorder{svc: svc, userID: userID, mode: mode, deviceInfo: deviceInfo}
}

func (r *Recorder) OpenSession(ctx context.Context, start time.Time) (string, error) {
	session, err := r.svc.OpenSession(ctx, r.userID, start, r.mode, r.deviceInfo)
	if err != nil {
		return "", err
	}
	return session.SessionID, nil
}

func (r *Recorder) CloseSession(ctx context.Context, sessionID string, end time.Time, elapsedSeconds int) error {
	return r.svc.CloseSession(ctx, sessionID, r.userID, end, elapsedSeconds)
}
