package services

import (
	"fmt"
	"time"

	"github.com/strideapp/stride/internal/models"
)

type StatsGoalRepository interface {
	ListByUser(userID uint) ([]models.Goal, error)
}

type StatsActionRepository interface {
	CountByStatusForUser(userID uint) (map[models.ActionStatus]int64, error)
}

// DashboardStats aggregates goal health and action progress for one user.
type DashboardStats struct {
	TotalGoals        int   `json:"totalGoals"`
	OnTrackGoals      int   `json:"onTrackGoals"`
	AtRiskGoals       int   `json:"atRiskGoals"`
	OffTrackGoals     int   `json:"offTrackGoals"`
	TotalActions      int64 `json:"totalActions"`
	ActiveActions     int64 `json:"activeActions"`
	InProgressActions int64 `json:"inProgressActions"`
	CompletedActions  int64 `json:"completedActions"`
}

type StatsService struct {
	goals   StatsGoalRepository
	actions StatsActionRepository
	now     func() time.Time
}

func NewStatsService(goals StatsGoalRepository, actions StatsActionRepository) *StatsService {
	return &StatsService{goals: goals, actions: actions, now: time.Now}
}

// DashboardOverview counts goals per derived status. Statuses are computed
// from current progress at call time rather than read from the stored
// column, so a goal that went overdue since its last write counts as off
// track here.
func (service *StatsService) DashboardOverview(userID uint) (DashboardStats, error) {
	goals, err := service.goals.ListByUser(userID)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("load goals: %w", err)
	}

	stats := DashboardStats{TotalGoals: len(goals)}
	now := service.now()
	for _, goal := range goals {
		switch GoalStatusAt(goal, now) {
		case models.StatusOnTrack:
			stats.OnTrackGoals++
		case models.StatusAtRisk:
			stats.AtRiskGoals++
		case models.StatusOffTrack:
			stats.OffTrackGoals++
		}
	}

	actionCounts, err := service.actions.CountByStatusForUser(userID)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("count actions: %w", err)
	}
	stats.ActiveActions = actionCounts[models.ActionTodo]
	stats.InProgressActions = actionCounts[models.ActionInProgress]
	stats.CompletedActions = actionCounts[models.ActionDone]
	stats.TotalActions = stats.ActiveActions + stats.InProgressActions + stats.CompletedActions

	return stats, nil
}
