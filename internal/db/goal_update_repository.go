package db

import (
	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type GoalUpdateRepository struct {
	database *gorm.DB
}

func NewGoalUpdateRepository(database *gorm.DB) *GoalUpdateRepository {
	return &GoalUpdateRepository{database: database}
}

// ListByGoal returns history rows newest first. limit <= 0 means no cap.
func (repo *GoalUpdateRepository) ListByGoal(goalID uint, limit int) ([]models.GoalUpdate, error) {
	updates := make([]models.GoalUpdate, 0)
	query := repo.database.Where("goal_id = ?", goalID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (repo *GoalUpdateRepository) ListByGoalPage(goalID uint, offset int, limit int) ([]models.GoalUpdate, int64, error) {
	var total int64
	if err := repo.database.Model(&models.GoalUpdate{}).Where("goal_id = ?", goalID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	updates := make([]models.GoalUpdate, 0)
	if err := repo.database.
		Where("goal_id = ?", goalID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&updates).Error; err != nil {
		return nil, 0, err
	}
	return updates, total, nil
}
