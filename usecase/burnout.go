package usecase

import "fmt"

// BurnoutInputs are the five independent signals the burnout score combines.
// Counts are clamped to >=0 upstream; TodayAverageMood is 0 when the user
// logged no scored mood today, else 1-10.
type BurnoutInputs struct {
	TodayAverageMood      float64 `json:"today_average_mood"`
	TasksDone             int     `json:"tasks_done"`
	TasksNearDeadline     int     `json:"tasks_near_deadline"`
	TasksExceededDeadline int     `json:"tasks_exceeded_deadline"`
	UpcomingEvents        int     `json:"upcoming_events"`
}

// BurnoutScore folds the five signals into one risk scalar. Mood is
// inverted so a low mood raises the score; completed tasks lower it;
// exceeded deadlines weigh twice as heavily as near ones. The weights are
// kept exactly as shipped for compatibility with existing clients and are
// not validated against any ground-truth model.
func BurnoutScore(in BurnoutInputs) float64 {
	moodContribution := 0.0
	if in.TodayAverageMood > 0 {
		moodContribution = 10 - in.TodayAverageMood
	}
	return moodContribution +
		float64(in.TasksDone)*-1 +
		float64(in.TasksNearDeadline)*1 +
		float64(in.TasksExceededDeadline)*2 +
		float64(in.UpcomingEvents)*1
}

// BurnoutCategory maps a score onto the four-tier risk label. The tiers are
// closed, ordered and non-overlapping: a score of exactly 10 is still Low,
// exactly 40 still High.
func BurnoutCategory(score float64) string {
	switch {
	case score <= 10:
		return "Low"
	case score <= 20:
		return "Moderate"
	case score <= 40:
		return "High"
	default:
		return "Critical"
	}
}

// BurnoutContributors names the signals currently dominating the score, for
// the insights panel. An unremarkable week reads as a balanced workload.
func BurnoutContributors(in BurnoutInputs) []string {
	var contributors []string

	moodContribution := 0.0
	if in.TodayAverageMood > 0 {
		moodContribution = 10 - in.TodayAverageMood
	}
	if moodContribution > 5 {
		contributors = append(contributors, "lower mood levels")
	}
	if in.TasksExceededDeadline > 0 {
		label := fmt.Sprintf("%d exceeded deadline", in.TasksExceededDeadline)
		if in.TasksExceededDeadline > 1 {
			label += "s"
		}
		contributors = append(contributors, label)
	}
	if in.TasksNearDeadline > 2 {
		contributors = append(contributors, fmt.Sprintf("%d tasks approaching deadline", in.TasksNearDeadline))
	}
	if in.TasksDone > 8 {
		contributors = append(contributors, "high task volume")
	}

	if len(contributors) == 0 {
		return []string{"balanced workload"}
	}
	return contributors
}
