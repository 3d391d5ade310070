package usecase

import (
	"sort"
	"time"
)

// DatedValue is one raw record feeding the week window: its timestamp plus
// an optional numeric metric. Records without a metric (a mood entry whose
// note carries no score) still count toward a bucket but not its average.
type DatedValue struct {
	At       time.Time
	Value    float64
	HasValue bool
}

// DayBucket is one calendar-day slot of a fixed 7-day window. Average is
// nil when the day has no metric-bearing records, which is distinct from an
// average of zero: charts must render the gap, not a zero point.
type DayBucket struct {
	Date    time.Time
	Count   int
	Average *float64
}

// WeekStart normalizes a date to local midnight of its Monday.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return midnight.AddDate(0, 0, -offset)
}

// SameLocalDay reports whether two instants fall on the same calendar day
// in loc. Comparison is by local year/month/day only; a timezone conversion
// must never shift a record into a neighboring day.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// BuildWeekBuckets distributes records over exactly 7 consecutive day
// buckets starting at weekStart. A record belongs to bucket d iff its local
// calendar date equals d's.
func BuildWeekBuckets(weekStart time.Time, loc *time.Location, records []DatedValue) []DayBucket {
	buckets := make([]DayBucket, 7)
	for i := range buckets {
		day := weekStart.AddDate(0, 0, i)

		var sum float64
		var scored, count int
		for _, r := range records {
			if !SameLocalDay(r.At, day, loc) {
				continue
			}
			count++
			if r.HasValue {
				sum += r.Value
				scored++
			}
		}

		buckets[i] = DayBucket{Date: day, Count: count}
		if scored > 0 {
			avg := sum / float64(scored)
			buckets[i].Average = &avg
		}
	}
	return buckets
}

// LongestDailyStreak returns the longest run of consecutive local calendar
// days carrying at least one timestamp: 1 for a single dated day, 0 for
// none. This is longest-ever, not the trailing streak ending today.
func LongestDailyStreak(times []time.Time, loc *time.Location) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[string]time.Time)
	for _, t := range times {
		year, month, day := t.In(loc).Date()
		midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
		seen[midnight.Format("2006-01-02")] = midnight
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour || days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}
