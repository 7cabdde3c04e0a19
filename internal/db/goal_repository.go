package db

import (
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) ListByUserPage(userID uint, offset int, limit int) ([]models.Goal, int64, error) {
	var total int64
	if err := repo.database.Model(&models.Goal{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&goals).Error; err != nil {
		return nil, 0, err
	}
	return goals, total, nil
}

func (repo *GoalRepository) FindByIDAndOwner(goalID uint, ownerID uint) (models.Goal, error) {
	var goal models.Goal
	if err := repo.database.
		Where("id = ? AND user_id = ?", goalID, ownerID).
		First(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

// UpdateFields writes only the named columns. Edits must go through here
// rather than a whole-row save so a check-in committing between read and
// write keeps its current_value and status.
func (repo *GoalRepository) UpdateFields(goalID uint, fields map[string]any) error {
	return repo.database.Model(&models.Goal{}).Where("id = ?", goalID).Updates(fields).Error
}

// DeleteWithRelated removes a goal together with its actions and progress
// history. Reports gorm.ErrRecordNotFound when the goal does not exist or
// belongs to another user.
func (repo *GoalRepository) DeleteWithRelated(goalID uint, ownerID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ? AND user_id = ?", goalID, ownerID).First(&goal).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.GoalUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Action{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Goal{}, goal.ID).Error
	})
}

// RecordProgress applies a check-in as one transaction: re-read the goal,
// overwrite current_value and status, then append the history row holding
// the value actually overwritten. statusFor sees the goal as read inside
// the transaction so the derived status cannot be computed from stale data.
func (repo *GoalRepository) RecordProgress(
	goalID uint,
	ownerID uint,
	newValue float64,
	notes string,
	statusFor func(goal models.Goal) models.GoalStatus,
) (uint, error) {
	var updateID uint
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ? AND user_id = ?", goalID, ownerID).First(&goal).Error; err != nil {
			return err
		}

		previousValue := goal.CurrentValue
		goal.CurrentValue = newValue
		if err := tx.Model(&models.Goal{}).Where("id = ?", goal.ID).Updates(map[string]any{
			"current_value": newValue,
			"status":        string(statusFor(goal)),
			"updated_at":    time.Now(),
		}).Error; err != nil {
			return err
		}

		update := models.GoalUpdate{
			GoalID:        goal.ID,
			UserID:        ownerID,
			PreviousValue: previousValue,
			NewValue:      newValue,
			Notes:         notes,
		}
		if err := tx.Create(&update).Error; err != nil {
			return err
		}

		updateID = update.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updateID, nil
}
