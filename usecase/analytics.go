package usecase

import (
	"context"
	"log"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/services"
)

// AnalyticsService computes the derive pipeline server-side: the per-day
// series the charts consume and the burnout report. Stateless; everything
// is recomputed from the stores on each call, with a short-TTL cache in
// front of the day series.
type AnalyticsService struct {
	moods  *MoodsService
	tasks  *TasksService
	events *EventsService
	focus  *FocusService
	screen *repository.ScreenRepo
	cache  *services.AnalyticsCache
}

func NewAnalyticsService(moods *MoodsService, tasks *TasksService, events *EventsService, focus *FocusService, screen *repository.ScreenRepo, cache *services.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{
		moods:  moods,
		tasks:  tasks,
		events: events,
		focus:  focus,
		screen: screen,
		cache:  cache,
	}
}

const (
	MinAnalyticsDays = 7
	MaxAnalyticsDays = 90

	// The burnout inputs count events over the next 30 days.
	upcomingEventWindowDays = 30
)

// DailyCacheInvalidator drops a user's cached day series. Every service
// whose writes feed the series holds one so the charts never serve a stale
// window for the full TTL.
type DailyCacheInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

func invalidateDailyCache(ctx context.Context, cache DailyCacheInvalidator, userID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		log.Printf("Failed to invalidate analytics cache: %v", err)
	}
}

// DailyData builds one row per local calendar day for the last `days`
// days, today included. Rows exist for every day in the window; a day
// without activity is all zeros, which the charts distinguish from missing
// data via the mood series' explicit gaps.
func (svc *AnalyticsService) DailyData(ctx context.Context, userID string, days int, now time.Time, loc *time.Location) ([]model.DailyAnalytics, error) {
	if days < MinAnalyticsDays {
		days = MinAnalyticsDays
	}
	if days > MaxAnalyticsDays {
		days = MaxAnalyticsDays
	}

	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx, userID, days); err != nil {
			log.Printf("Analytics cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	year, month, day := now.In(loc).Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, loc)
	windowStart := today.AddDate(0, 0, -(days - 1))

	sessions, err := svc.focus.repo.GetSessionsSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	completed, err := svc.tasks.repo.GetCompletedSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	entries, err := svc.moods.repo.GetEntriesSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	samples, err := svc.screen.GetSamplesSince(ctx, userID, windowStart.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	screenByDate := make(map[string]*model.ScreenActivity, len(samples))
	for _, s := range samples {
		screenByDate[s.Date] = s
	}

	series := make([]model.DailyAnalytics, 0, days)
	for i := 0; i < days; i++ {
		date := windowStart.AddDate(0, 0, i)
		row := model.DailyAnalytics{Date: date.Format("2006-01-02")}

		focusSeconds := 0
		for _, s := range sessions {
			if SameLocalDay(s.StartTime, date, loc) {
				focusSeconds += s.DurationSeconds
			}
		}
		row.FocusTime = focusSeconds / 60

		for _, t := range completed {
			if SameLocalDay(t.UpdatedAt, date, loc) {
				row.TasksCompleted++
			}
		}

		var moodSum float64
		var moodCount int
		for _, e := range entries {
			if !SameLocalDay(e.CreatedAt, date, loc) {
				continue
			}
			if score, _, ok := model.DecodeScore(e.Note); ok {
				moodSum += float64(score)
				moodCount++
			}
		}
		if moodCount > 0 {
			row.Mood = moodSum / float64(moodCount)
		}

		if s, ok := screenByDate[row.Date]; ok {
			row.ScreenTime = s.ScreenMinutes
			row.Breaks = s.Breaks
		}

		series = append(series, row)
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, days, series); err != nil {
			log.Printf("Analytics cache write failed: %v", err)
		}
	}
	return series, nil
}

// WeekTrend describes one chart's weekly insight.
type WeekTrend struct {
	Trend         string  `json:"trend"`
	ChangePercent int     `json:"change_percent"`
	Average       float64 `json:"average"`
	Max           float64 `json:"max"`
	MaxLabel      string  `json:"max_label"`
	Min           float64 `json:"min"`
	MinLabel      string  `json:"min_label"`
	Consistency   string  `json:"consistency,omitempty"`
}

// BurnoutReport is the full derived payload for the analytics page.
type BurnoutReport struct {
	Score        float64       `json:"score"`
	Category     string        `json:"category"`
	Inputs       BurnoutInputs `json:"inputs"`
	Contributors []string      `json:"contributors"`
	FocusTrend   *WeekTrend    `json:"focus_trend"`
	TaskTrend    *WeekTrend    `json:"task_trend"`
	MoodTrend    *WeekTrend    `json:"mood_trend"`
}

// BurnoutReport assembles today's burnout inputs and the selected week's
// trends. Each input degrades independently: a failed read logs, zeroes
// its signal and never blocks the rest of the report.
func (svc *AnalyticsService) BurnoutReport(ctx context.Context, userID string, weekStart, now time.Time, loc *time.Location) (*BurnoutReport, error) {
	var inputs BurnoutInputs

	if mood, err := svc.moods.TodayAverageMood(ctx, userID, now, loc); err != nil {
		log.Printf("Failed to load today's mood average: %v", err)
	} else {
		inputs.TodayAverageMood = mood
	}

	if counts, err := svc.tasks.DeadlineCounts(ctx, userID, now); err != nil {
		log.Printf("Failed to load deadline counts: %v", err)
	} else {
		inputs.TasksDone = counts.Done
		inputs.TasksNearDeadline = counts.Near
		inputs.TasksExceededDeadline = counts.Exceeded
	}

	if count, err := svc.events.CountUpcoming(ctx, userID, now, upcomingEventWindowDays); err != nil {
		log.Printf("Failed to count upcoming events: %v", err)
	} else {
		inputs.UpcomingEvents = count
	}

	report := &BurnoutReport{
		Score:        BurnoutScore(inputs),
		Category:     BurnoutCategory(BurnoutScore(inputs)),
		Inputs:       inputs,
		Contributors: BurnoutContributors(inputs),
	}

	daily, err := svc.DailyData(ctx, userID, MaxAnalyticsDays, now, loc)
	if err != nil {
		log.Printf("Failed to load daily series for trends: %v", err)
		return report, nil
	}

	week := weekRows(daily, weekStart, loc)

	focusSamples := make([]Sample, 0, len(week))
	taskSamples := make([]Sample, 0, len(week))
	taskCounts := make([]float64, 0, len(week))
	for _, row := range week {
		focusSamples = append(focusSamples, Sample{Label: row.Date, Value: float64(row.FocusTime)})
		taskSamples = append(taskSamples, Sample{Label: row.Date, Value: float64(row.TasksCompleted)})
		taskCounts = append(taskCounts, float64(row.TasksCompleted))
	}
	report.FocusTrend = weekTrend(AnalyzeTrend(focusSamples), "increasing", "decreasing", "stable", "")
	report.TaskTrend = weekTrend(AnalyzeTrend(taskSamples), "improving", "declining", "consistent", Consistency(taskCounts))

	if buckets, err := svc.moods.WeekSeries(ctx, userID, weekStart, loc); err != nil {
		log.Printf("Failed to load mood week series: %v", err)
	} else {
		// Days without scored entries are gaps, not zeros: they are
		// dropped before the halves are averaged.
		moodSamples := make([]Sample, 0, len(buckets))
		for _, b := range buckets {
			if b.Average != nil {
				moodSamples = append(moodSamples, Sample{Label: b.Date.Format("2006-01-02"), Value: *b.Average})
			}
		}
		report.MoodTrend = weekTrend(AnalyzeTrend(moodSamples), "improving", "declining", "stable", "")
	}

	return report, nil
}

// weekRows selects the 7 rows of the series falling inside the selected
// week, skipping days outside the fetched window.
func weekRows(daily []model.DailyAnalytics, weekStart time.Time, loc *time.Location) []model.DailyAnalytics {
	byDate := make(map[string]model.DailyAnalytics, len(daily))
	for _, row := range daily {
		byDate[row.Date] = row
	}

	rows := make([]model.DailyAnalytics, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		if row, ok := byDate[date]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func weekTrend(result *TrendResult, rising, falling, flat, consistency string) *WeekTrend {
	if result == nil {
		return nil
	}
	return &WeekTrend{
		Trend:         result.Direction.Word(rising, falling, flat),
		ChangePercent: result.ChangePercent,
		Average:       result.Average,
		Max:           result.Max,
		MaxLabel:      result.MaxLabel,
		Min:           result.Min,
		MinLabel:      result.MinLabel,
		Consistency:   consistency,
	}
}
