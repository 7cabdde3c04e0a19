package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrInvalidProgressValue = errors.New("progress value must be non-negative")
)

// ProgressGoalStore applies a check-in as one atomic unit: overwrite the
// goal's current value and status, then append the history row carrying the
// value actually overwritten. statusFor is evaluated against the goal as
// read inside the same transaction.
type ProgressGoalStore interface {
	RecordProgress(goalID uint, ownerID uint, newValue float64, notes string, statusFor func(goal models.Goal) models.GoalStatus) (uint, error)
}

type ProgressService struct {
	goals ProgressGoalStore
	now   func() time.Time
}

func NewProgressService(goals ProgressGoalStore) *ProgressService {
	return &ProgressService{goals: goals, now: time.Now}
}

// RecordUpdate records a new progress value for a goal owned by ownerID and
// returns the identity of the created history row. A goal that does not
// exist or belongs to another user reports ErrGoalNotFound either way.
func (service *ProgressService) RecordUpdate(goalID uint, ownerID uint, newValue float64, notes string) (uint, error) {
	if newValue < 0 {
		return 0, ErrInvalidProgressValue
	}

	updateID, err := service.goals.RecordProgress(goalID, ownerID, newValue, strings.TrimSpace(notes),
		func(goal models.Goal) models.GoalStatus {
			return GoalStatusAt(goal, service.now())
		})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGoalNotFound
		}
		return 0, fmt.Errorf("record progress: %w", err)
	}
	return updateID, nil
}
