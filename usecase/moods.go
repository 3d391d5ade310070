package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/utils"

	"github.com/google/uuid"
)

type MoodsService struct {
	repo  *repository.MoodsRepo
	cache DailyCacheInvalidator
}

func NewMoodsService(repo *repository.MoodsRepo, cache DailyCacheInvalidator) *MoodsService {
	return &MoodsService{repo: repo, cache: cache}
}

// CreateEntry validates the mood/score pair, packs the score into the note
// and stores the entry. A nil createdAt defaults to now; clients may
// backfill entries for earlier days.
func (svc *MoodsService) CreateEntry(ctx context.Context, userID string, mood model.Mood, score int, note string, createdAt *time.Time) (*model.MoodEntry, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if !mood.Valid() {
		return nil, errors.New("invalid mood category")
	}
	if err := model.ValidateScoreForMood(mood, score); err != nil {
		return nil, err
	}

	at := time.Now()
	if createdAt != nil && !createdAt.IsZero() {
		at = *createdAt
	}

	entry := &model.MoodEntry{
		EntryID:   uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		Note:      model.EncodeScore(score, note),
		CreatedAt: at,
	}
	if err := svc.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	utils.TrackMoodOperation("create")
	invalidateDailyCache(ctx, svc.cache, userID)
	return entry, nil
}

// UpdateEntry rewrites mood, score and note; the original timestamp is kept.
func (svc *MoodsService) UpdateEntry(ctx context.Context, entryID, userID string, mood model.Mood, score int, note string) error {
	if !mood.Valid() {
		return errors.New("invalid mood category")
	}
	if err := model.ValidateScoreForMood(mood, score); err != nil {
		return err
	}
	if err := svc.repo.UpdateEntry(ctx, entryID, userID, mood, model.EncodeScore(score, note)); err != nil {
		return err
	}
	utils.TrackMoodOperation("update")
	invalidateDailyCache(ctx, svc.cache, userID)
	return nil
}

func (svc *MoodsService) DeleteEntry(ctx context.Context, entryID, userID string) error {
	if err := svc.repo.DeleteEntry(ctx, entryID, userID); err != nil {
		return err
	}
	utils.TrackMoodOperation("delete")
	invalidateDailyCache(ctx, svc.cache, userID)
	return nil
}

func (svc *MoodsService) ClearEntries(ctx context.Context, userID string) (int, error) {
	deleted, err := svc.repo.ClearEntries(ctx, userID)
	if err != nil {
		return 0, err
	}
	utils.TrackMoodOperation("clear")
	invalidateDailyCache(ctx, svc.cache, userID)
	return deleted, nil
}

func (svc *MoodsService) GetUserEntries(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	return svc.repo.GetUserEntries(ctx, userID)
}

// TodayAverageMood averages the scores logged today, local time. Zero means
// no data, never "a very bad day".
func (svc *MoodsService) TodayAverageMood(ctx context.Context, userID string, now time.Time, loc *time.Location) (float64, error) {
	entries, err := svc.repo.GetEntriesSince(ctx, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return 0, err
	}

	var sum float64
	var count int
	for _, e := range entries {
		if !SameLocalDay(e.CreatedAt, now, loc) {
			continue
		}
		if score, _, ok := model.DecodeScore(e.Note); ok {
			sum += float64(score)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// WeekSeries buckets the user's entries into the 7 days starting at
// weekStart, averaging decoded scores per day.
func (svc *MoodsService) WeekSeries(ctx context.Context, userID string, weekStart time.Time, loc *time.Location) ([]DayBucket, error) {
	entries, err := svc.repo.GetEntriesSince(ctx, userID, weekStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	return BuildWeekBuckets(weekStart, loc, moodValues(entries)), nil
}

// Stats assembles the full mood statistics payload: counts per category,
// rolling averages, daily and weekly breakdowns, detected patterns and the
// longest daily streak.
func (svc *MoodsService) Stats(ctx context.Context, userID string, now time.Time, loc *time.Location) (*model.MoodStats, error) {
	entries, err := svc.repo.GetUserEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &model.MoodStats{TotalEntries: len(entries)}

	counts := map[model.Mood]int{}
	times := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		counts[e.Mood]++
		times = append(times, e.CreatedAt)
	}
	for _, mood := range []model.Mood{model.MoodVerySad, model.MoodSad, model.MoodNeutral, model.MoodHappy, model.MoodVeryHappy} {
		if counts[mood] > 0 {
			stats.MoodCounts = append(stats.MoodCounts, model.MoodCount{Mood: mood, Count: counts[mood]})
		}
	}

	stats.Averages.Weekly = averageScoreSince(entries, now.AddDate(0, 0, -7))
	stats.Averages.Monthly = averageScoreSince(entries, now.AddDate(0, 0, -30))
	stats.Averages.Overall = averageScoreSince(entries, time.Time{})

	// Daily breakdown: the current week, one row per day, nil average for
	// days without scored entries.
	weekStart := WeekStart(now, loc)
	for _, bucket := range BuildWeekBuckets(weekStart, loc, moodValues(entries)) {
		stats.DailyBreakdown = append(stats.DailyBreakdown, model.DailyMoodBreakdown{
			Date:    bucket.Date.Format("2006-01-02"),
			Average: bucket.Average,
			Count:   bucket.Count,
		})
	}

	// Weekly breakdown: the last four whole weeks, newest last.
	for i := 3; i >= 0; i-- {
		start := weekStart.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 6)
		next := start.AddDate(0, 0, 7)

		var sum float64
		var scored, count int
		for _, e := range entries {
			at := e.CreatedAt.In(loc)
			if at.Before(start) || !at.Before(next) {
				continue
			}
			count++
			if score, _, ok := model.DecodeScore(e.Note); ok {
				sum += float64(score)
				scored++
			}
		}

		breakdown := model.WeeklyMoodBreakdown{
			WeekStart: start.Format("2006-01-02"),
			WeekEnd:   end.Format("2006-01-02"),
			Count:     count,
		}
		if scored > 0 {
			avg := sum / float64(scored)
			breakdown.Average = &avg
		}
		stats.WeeklyBreakdown = append(stats.WeeklyBreakdown, breakdown)
	}

	stats.StreakDays = LongestDailyStreak(times, loc)
	stats.Patterns = moodPatterns(stats)
	return stats, nil
}

// moodValues maps entries to bucketer records: every entry counts, only
// entries with a decodable score carry a value.
func moodValues(entries []*model.MoodEntry) []DatedValue {
	values := make([]DatedValue, 0, len(entries))
	for _, e := range entries {
		v := DatedValue{At: e.CreatedAt}
		if score, _, ok := model.DecodeScore(e.Note); ok {
			v.Value = float64(score)
			v.HasValue = true
		}
		values = append(values, v)
	}
	return values
}

func averageScoreSince(entries []*model.MoodEntry, cutoff time.Time) float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if !cutoff.IsZero() && e.CreatedAt.Before(cutoff) {
			continue
		}
		if score, _, ok := model.DecodeScore(e.Note); ok {
			sum += float64(score)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

func moodPatterns(stats *model.MoodStats) []model.MoodPattern {
	var patterns []model.MoodPattern

	if stats.StreakDays >= 7 {
		patterns = append(patterns, model.MoodPattern{
			Type:    "streak",
			Message: fmt.Sprintf("You've logged your mood %d days in a row at your best", stats.StreakDays),
		})
	}
	if stats.Averages.Weekly > 0 && stats.Averages.Monthly > 0 {
		switch {
		case stats.Averages.Weekly > stats.Averages.Monthly:
			patterns = append(patterns, model.MoodPattern{
				Type:    "improvement",
				Message: "Your mood this week is above your monthly average",
			})
		case stats.Averages.Weekly < stats.Averages.Monthly:
			patterns = append(patterns, model.MoodPattern{
				Type:    "decline",
				Message: "Your mood this week is below your monthly average",
			})
		}
	}
	return patterns
}
