package usecase

import (
	"context"
	"errors"
	"testing"
)

type recordingInvalidator struct {
	users []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, userID string) error {
	r.users = append(r.users, userID)
	return nil
}

type failingInvalidator struct{}

func (failingInvalidator) Invalidate(context.Context, string) error {
	return errors.New("redis down")
}

func TestInvalidateDailyCacheDropsUserWindows(t *testing.T) {
	rec := &recordingInvalidator{}

	svc := NewMoodsService(nil, rec)
	invalidateDailyCache(context.Background(), svc.cache, "user-1")

	tasks := NewTasksService(nil, rec)
	invalidateDailyCache(context.Background(), tasks.cache, "user-2")

	focus := NewFocusService(nil, rec)
	invalidateDailyCache(context.Background(), focus.cache, "user-3")

	want := []string{"user-1", "user-2", "user-3"}
	if len(rec.users) != len(want) {
		t.Fatalf("expected %d invalidations, got %d", len(want), len(rec.users))
	}
	for i, userID := range want {
		if rec.users[i] != userID {
			t.Errorf("invalidation %d: expected %s, got %s", i, userID, rec.users[i])
		}
	}
}

func TestInvalidateDailyCacheWithoutCache(t *testing.T) {
	// Services built without a cache must not panic on writes.
	invalidateDailyCache(context.Background(), nil, "user-1")
}

func TestInvalidateDailyCacheSwallowsErrors(t *testing.T) {
	// A failed invalidation logs; the write that triggered it already
	// succeeded and must not be reported as failed.
	invalidateDailyCache(context.Background(), failingInvalidator{}, "user-1")
}
