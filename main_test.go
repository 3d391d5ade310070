package main

import (
	"testing"

	"smartbuddy/handler"

	"github.com/gin-gonic/gin"
)

// The client completes tasks and closes focus sessions at fixed paths;
// moving them breaks deployed installs.
func TestRegisteredRoutePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	registerRoutes(router, apiHandlers{
		user:      handler.NewUserHandler(nil),
		mood:      handler.NewMoodHandler(nil),
		task:      handler.NewTaskHandler(nil),
		events:    handler.NewEventsHandler(nil),
		focus:     handler.NewFocusHandler(nil),
		screen:    handler.NewScreenHandler(nil, nil),
		analytics: handler.NewAnalyticsHandler(nil),
		prefs:     handler.NewPreferencesHandler(nil, nil),
		quotes:    handler.NewQuotesHandler(""),
		pomodoro:  handler.NewPomodoroHandler(nil),
	})

	want := []string{
		"POST /api/tasks/complete/:id",
		"PUT /api/screen-activity/focus-sessions/:id",
		"GET /api/screen-activity/analytics",
		"GET /api/calendar/events/upcoming",
		"GET /api/motivation/quotes/zen",
		"POST /api/auth/logout",
		"GET /api/preferences/stream",
		"POST /api/screen-activity/focus-sessions/",
		"GET /api/screen-activity/focus-sessions/today",
	}

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, path := range want {
		if !registered[path] {
			t.Errorf("route %s is not registered", path)
		}
	}

	// The old paths must be gone, not aliased.
	gone := []string{
		"POST /api/tasks/:id/complete",
		"PUT /api/screen-activity/focus-sessions/:id/end",
	}
	for _, path := range gone {
		if registered[path] {
			t.Errorf("stale route %s is still registered", path)
		}
	}
}
