package usecase

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	loc := time.UTC

	// Wednesday March 12 2025 normalizes to Monday March 10.
	wed := time.Date(2025, 3, 12, 15, 30, 0, 0, loc)
	got := WeekStart(wed, loc)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("WeekStart(Wed) = %v, want %v", got, want)
	}

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2025, 3, 16, 1, 0, 0, 0, loc)
	if got := WeekStart(sun, loc); !got.Equal(want) {
		t.Errorf("WeekStart(Sun) = %v, want %v", got, want)
	}

	// A Monday is already a week start.
	mon := time.Date(2025, 3, 10, 23, 59, 0, 0, loc)
	if got := WeekStart(mon, loc); !got.Equal(want) {
		t.Errorf("WeekStart(Mon) = %v, want %v", got, want)
	}
}

func TestSameLocalDayAcrossZones(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	// 22:00 UTC is 03:00 the next local day.
	a := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 11, 9, 0, 0, 0, loc)
	if !SameLocalDay(a, b, loc) {
		t.Error("instants on the same local day reported as different")
	}
	if SameLocalDay(a, b, time.UTC) {
		t.Error("instants on different UTC days reported as same")
	}
}

func TestBuildWeekBuckets(t *testing.T) {
	loc := time.UTC
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	records := []DatedValue{
		{At: weekStart.Add(9 * time.Hour), Value: 6, HasValue: true},
		{At: weekStart.Add(20 * time.Hour), Value: 8, HasValue: true},
		{At: weekStart.AddDate(0, 0, 2).Add(12 * time.Hour), Value: 4, HasValue: true},
		// Unscored record: counts, never averages.
		{At: weekStart.AddDate(0, 0, 3), HasValue: false},
		// Next Monday midnight: outside the window.
		{At: weekStart.AddDate(0, 0, 7), Value: 10, HasValue: true},
	}

	buckets := BuildWeekBuckets(weekStart, loc, records)
	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}

	for i, b := range buckets {
		want := weekStart.AddDate(0, 0, i)
		if !b.Date.Equal(want) {
			t.Errorf("bucket %d date %v, want %v", i, b.Date, want)
		}
	}

	if buckets[0].Count != 2 || buckets[0].Average == nil || *buckets[0].Average != 7 {
		t.Errorf("Monday bucket = %+v, want count 2 average 7", buckets[0])
	}
	if buckets[2].Count != 1 || buckets[2].Average == nil || *buckets[2].Average != 4 {
		t.Errorf("Wednesday bucket = %+v, want count 1 average 4", buckets[2])
	}
	if buckets[3].Count != 1 || buckets[3].Average != nil {
		t.Errorf("Thursday bucket = %+v, want count 1 with nil average", buckets[3])
	}
	// Empty days keep a nil average, distinct from zero.
	if buckets[1].Count != 0 || buckets[1].Average != nil {
		t.Errorf("Tuesday bucket = %+v, want empty with nil average", buckets[1])
	}
	if buckets[6].Count != 0 {
		t.Errorf("Sunday bucket picked up next week's record: %+v", buckets[6])
	}
}

func TestBuildWeekBucketsLocalMidnightMembership(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	// 01:00 UTC on March 11 is 22:00 March 10 local: a Monday record.
	records := []DatedValue{
		{At: time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC), Value: 5, HasValue: true},
	}
	buckets := BuildWeekBuckets(weekStart, loc, records)
	if buckets[0].Count != 1 {
		t.Errorf("UTC timestamp not bucketed by local day: %+v", buckets[0])
	}
	if buckets[1].Count != 0 {
		t.Errorf("record leaked into Tuesday: %+v", buckets[1])
	}
}

func TestLongestDailyStreak(t *testing.T) {
	loc := time.UTC
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 10, 0, 0, 0, loc)
	}

	if got := LongestDailyStreak(nil, loc); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
	if got := LongestDailyStreak([]time.Time{day(5)}, loc); got != 1 {
		t.Errorf("single day = %d, want 1", got)
	}

	// 3-day run, gap, 2-day run: longest ever is 3 even though the later
	// run is more recent.
	times := []time.Time{day(1), day(2), day(3), day(7), day(8)}
	if got := LongestDailyStreak(times, loc); got != 3 {
		t.Errorf("longest = %d, want 3", got)
	}
}

func TestLongestDailyStreakSameDayDuplicates(t *testing.T) {
	loc := time.UTC
	times := []time.Time{
		time.Date(2025, 3, 4, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 4, 20, 0, 0, 0, loc),
		time.Date(2025, 3, 5, 12, 0, 0, 0, loc),
	}
	if got := LongestDailyStreak(times, loc); got != 2 {
		t.Errorf("streak = %d, want 2 (duplicates collapse to one day)", got)
	}
}
