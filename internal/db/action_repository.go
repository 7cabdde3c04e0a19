package db

import (
	"strings"

	"github.com/strideapp/stride/internal/models"
	"github.com/strideapp/stride/internal/services"
	"gorm.io/gorm"
)

type ActionRepository struct {
	database *gorm.DB
}

func NewActionRepository(database *gorm.DB) *ActionRepository {
	return &ActionRepository{database: database}
}

func (repo *ActionRepository) filtered(goalID uint, filter services.ActionFilter) *gorm.DB {
	query := repo.database.Model(&models.Action{}).Where("goal_id = ?", goalID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if filter.DueBy != nil {
		query = query.Where("due_date IS NOT NULL AND due_date <= ?", *filter.DueBy)
	}
	return query
}

func (repo *ActionRepository) ListByGoal(goalID uint, filter services.ActionFilter) ([]models.Action, int64, error) {
	var total int64
	if err := repo.filtered(goalID, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := repo.filtered(goalID, filter).
		Order("due_date ASC, created_at DESC, id DESC")
	if !filter.WantAll {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	actions := make([]models.Action, 0)
	if err := query.Find(&actions).Error; err != nil {
		return nil, 0, err
	}
	return actions, total, nil
}

// ListRecentByGoal returns the newest actions for advisory prompts.
func (repo *ActionRepository) ListRecentByGoal(goalID uint, limit int) ([]models.Action, error) {
	actions := make([]models.Action, 0)
	query := repo.database.Where("goal_id = ?", goalID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (repo *ActionRepository) FindByIDAndOwner(actionID uint, goalID uint, ownerID uint) (models.Action, error) {
	var action models.Action
	if err := repo.database.
		Where("id = ? AND goal_id = ? AND user_id = ?", actionID, goalID, ownerID).
		First(&action).Error; err != nil {
		return models.Action{}, err
	}
	return action, nil
}

func (repo *ActionRepository) Create(action *models.Action) error {
	return repo.database.Create(action).Error
}

func (repo *ActionRepository) Save(action *models.Action) error {
	return repo.database.Save(action).Error
}

func (repo *ActionRepository) Delete(actionID uint) error {
	return repo.database.Delete(&models.Action{}, actionID).Error
}

// CountByStatusForUser aggregates action statuses across all of a user's
// goals for the dashboard.
func (repo *ActionRepository) CountByStatusForUser(userID uint) (map[models.ActionStatus]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Total  int64  `gorm:"column:total"`
	}

	rows := make([]statusCount, 0)
	if err := repo.database.Model(&models.Action{}).
		Select("status, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.ActionStatus]int64, len(rows))
	for _, row := range rows {
		counts[models.ActionStatus(row.Status)] = row.Total
	}
	return counts, nil
}
