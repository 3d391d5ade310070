package usecase

import "math"

type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendFlat    TrendDirection = "flat"
)

// Word renders a direction with chart-specific vocabulary, e.g.
// ("increasing", "decreasing", "stable") for focus time or
// ("improving", "declining", "consistent") for task completion.
func (d TrendDirection) Word(rising, falling, flat string) string {
	switch d {
	case TrendRising:
		return rising
	case TrendFalling:
		return falling
	default:
		return flat
	}
}

// Sample is one dated point of a short weekly series.
type Sample struct {
	Label string
	Value float64
}

type TrendResult struct {
	Direction     TrendDirection
	ChangePercent int
	Average       float64
	Max           float64
	MaxLabel      string
	Min           float64
	MinLabel      string
}

// AnalyzeTrend classifies a short (<=7 point) series by splitting it at
// ceil(n/2), averaging each half and comparing: a strictly greater second
// half rises, strictly less falls, equal is flat. Percent change is
// |second-first| / max(first,1) * 100 rounded to an integer. Fewer than two
// samples produce no analysis. Callers must exclude no-data days before
// calling; a missing day is never a zero.
func AnalyzeTrend(samples []Sample) *TrendResult {
	if len(samples) < 2 {
		return nil
	}

	mid := (len(samples) + 1) / 2
	firstAvg := average(samples[:mid])
	secondAvg := average(samples[mid:])

	direction := TrendFlat
	if secondAvg > firstAvg {
		direction = TrendRising
	} else if secondAvg < firstAvg {
		direction = TrendFalling
	}

	base := firstAvg
	if base < 1 {
		base = 1
	}
	change := int(math.Round(math.Abs(secondAvg-firstAvg) / base * 100))

	result := &TrendResult{
		Direction:     direction,
		ChangePercent: change,
		Average:       average(samples),
		Max:           samples[0].Value,
		MaxLabel:      samples[0].Label,
		Min:           samples[0].Value,
		MinLabel:      samples[0].Label,
	}
	for _, s := range samples[1:] {
		if s.Value > result.Max {
			result.Max = s.Value
			result.MaxLabel = s.Label
		}
		if s.Value < result.Min {
			result.Min = s.Value
			result.MinLabel = s.Label
		}
	}
	return result
}

// Consistency grades how evenly a series is spread: identical values are
// very consistent, a max-min spread of at most 2 fairly consistent,
// anything wider variable.
func Consistency(values []float64) string {
	if len(values) == 0 {
		return "variable"
	}
	min, max := values[0], values[0]
	allEqual := true
	for _, v := range values[1:] {
		if v != values[0] {
			allEqual = false
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	switch {
	case allEqual:
		return "very consistent"
	case max-min <= 2:
		return "fairly consistent"
	default:
		return "variable"
	}
}

func average(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s.Value
	}
	return sum / float64(len(samples))
}
