package services

import (
	"time"

	"github.com/strideapp/stride/internal/models"
)

// Progress-ratio thresholds for classifying a goal's health.
const (
	onTrackRatio = 0.8
	atRiskRatio  = 0.5
)

// ComputeGoalStatus classifies a goal from its progress ratio and due date.
// Overdue goals are off track no matter how close to the target they are.
// Callers guarantee targetValue > 0; the value is validated at goal
// creation and edit time.
func ComputeGoalStatus(currentValue float64, targetValue float64, dueDate time.Time, now time.Time) models.GoalStatus {
	if now.After(dueDate) {
		return models.StatusOffTrack
	}
	return statusForRatio(currentValue / targetValue)
}

// GoalStatusAt derives the status of a stored goal at the given moment.
// Goals without a due date are classified by ratio alone.
func GoalStatusAt(goal models.Goal, now time.Time) models.GoalStatus {
	if goal.TargetValue <= 0 {
		return models.StatusOffTrack
	}
	if goal.DueDate != nil {
		return ComputeGoalStatus(goal.CurrentValue, goal.TargetValue, *goal.DueDate, now)
	}
	return statusForRatio(goal.CurrentValue / goal.TargetValue)
}

func statusForRatio(ratio float64) models.GoalStatus {
	switch {
	case ratio >= onTrackRatio:
		return models.StatusOnTrack
	case ratio >= atRiskRatio:
		return models.StatusAtRisk
	default:
		return models.StatusOffTrack
	}
}
