package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartbuddy/model"

	"github.com/gin-gonic/gin"
)

type fakeFocusService struct {
	opened []model.FocusMode
}

func (f *fakeFocusService) OpenSession(_ context.Context, userID string, start time.Time, mode model.FocusMode, deviceInfo string) (*model.FocusSession, error) {
	f.opened = append(f.opened, mode)
	return &model.FocusSession{
		SessionID: "session-1",
		UserID:    userID,
		StartTime: start,
		FocusMode: mode,
	}, nil
}

func (f *fakeFocusService) CloseSession(context.Context, string, string, time.Time, int) error {
	return nil
}

func (f *fakeFocusService) GetUserSessions(context.Context, string) ([]*model.FocusSession, error) {
	return nil, nil
}

func (f *fakeFocusService) TodayTotalSeconds(context.Context, string, time.Time, *time.Location) (int, error) {
	return 0, nil
}

func setupFocusRouter(svc focusProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &FocusHandler{service: svc}
	router := gin.New()
	router.POST("/api/screen-activity/focus-sessions/", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		h.StartSession(c)
	})
	return router
}

// focus_mode is optional: a bare POST must open a session in the default
// mode, not reject the empty body.
func TestStartSessionWithEmptyBody(t *testing.T) {
	svc := &fakeFocusService{}
	router := setupFocusRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/screen-activity/focus-sessions/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for an empty body, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.opened) != 1 {
		t.Fatalf("expected one opened session, got %d", len(svc.opened))
	}
}

func TestStartSessionWithMode(t *testing.T) {
	svc := &fakeFocusService{}
	router := setupFocusRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/screen-activity/focus-sessions/", strings.NewReader(`{"focus_mode":"deep"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.opened) != 1 || svc.opened[0] != model.FocusModeDeep {
		t.Errorf("expected a deep session, got %v", svc.opened)
	}
}
