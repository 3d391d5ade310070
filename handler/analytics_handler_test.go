package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartbuddy/model"
	"smartbuddy/usecase"

	"github.com/gin-gonic/gin"
)

type fakeAnalyticsService struct {
	days []int
}

func (f *fakeAnalyticsService) DailyData(_ context.Context, _ string, days int, _ time.Time, _ *time.Location) ([]model.DailyAnalytics, error) {
	f.days = append(f.days, days)
	return []model.DailyAnalytics{
		{Date: "2026-08-31", FocusTime: 50, TasksCompleted: 2},
		{Date: "2026-09-01", FocusTime: 25, TasksCompleted: 1},
	}, nil
}

func (f *fakeAnalyticsService) BurnoutReport(context.Context, string, time.Time, time.Time, *time.Location) (*usecase.BurnoutReport, error) {
	return &usecase.BurnoutReport{Category: "Low"}, nil
}

func setupAnalyticsRouter(svc analyticsProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &AnalyticsHandler{service: svc}
	router := gin.New()
	router.GET("/api/screen-activity/analytics", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		h.GetDailyData(c)
	})
	return router
}

// The desktop client reads the series from data.daily_data; a bare array
// under data breaks it.
func TestGetDailyDataEnvelope(t *testing.T) {
	router := setupAnalyticsRouter(&fakeAnalyticsService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/screen-activity/analytics?days=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			DailyData []model.DailyAnalytics `json:"daily_data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.DailyData) != 2 {
		t.Fatalf("expected 2 rows under data.daily_data, got %d", len(resp.Data.DailyData))
	}
	if resp.Data.DailyData[0].Date != "2026-08-31" {
		t.Errorf("unexpected first row date %s", resp.Data.DailyData[0].Date)
	}
}

func TestGetDailyDataRejectsNonNumericDays(t *testing.T) {
	router := setupAnalyticsRouter(&fakeAnalyticsService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/screen-activity/analytics?days=week", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric days value, got %d", w.Code)
	}
}
