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
	ErrActionNotFound     = errors.New("action not found")
	ErrInvalidActionInput = errors.New("invalid action input")
)

// ActionFilter narrows action listings. Zero values mean "no constraint".
type ActionFilter struct {
	Status  models.ActionStatus
	Search  string
	DueBy   *time.Time
	Offset  int
	Limit   int
	WantAll bool
}

type ActionRepository interface {
	ListByGoal(goalID uint, filter ActionFilter) ([]models.Action, int64, error)
	FindByIDAndOwner(actionID uint, goalID uint, ownerID uint) (models.Action, error)
	Create(action *models.Action) error
	Save(action *models.Action) error
	Delete(actionID uint) error
}

// ActionGoalRepository resolves goal ownership before any action access.
type ActionGoalRepository interface {
	FindByIDAndOwner(goalID uint, ownerID uint) (models.Goal, error)
}

type ActionInput struct {
	Title       string
	Description string
	Effort      models.EffortLevel
	DueDate     *time.Time
}

type ActionPatch struct {
	Title       *string
	Description *string
	Status      *models.ActionStatus
	Effort      *models.EffortLevel
	DueDate     *time.Time
}

type ActionService struct {
	actions ActionRepository
	goals   ActionGoalRepository
}

func NewActionService(actions ActionRepository, goals ActionGoalRepository) *ActionService {
	return &ActionService{actions: actions, goals: goals}
}

func (service *ActionService) ListActions(goalID uint, ownerID uint, filter ActionFilter) ([]models.Action, int64, error) {
	if _, err := service.goals.FindByIDAndOwner(goalID, ownerID); err != nil {
		return nil, 0, mapGoalLookupError(err)
	}

	actions, total, err := service.actions.ListByGoal(goalID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list actions: %w", err)
	}
	return actions, total, nil
}

func (service *ActionService) CreateAction(goalID uint, ownerID uint, input ActionInput) (uint, error) {
	if _, err := service.goals.FindByIDAndOwner(goalID, ownerID); err != nil {
		return 0, mapGoalLookupError(err)
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := validateActionFields(input.Title, input.Description, input.Effort); err != nil {
		return 0, err
	}

	action := models.Action{
		GoalID:      goalID,
		UserID:      ownerID,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Status:      models.ActionTodo,
		Effort:      input.Effort,
		DueDate:     input.DueDate,
	}
	if err := service.actions.Create(&action); err != nil {
		return 0, fmt.Errorf("create action: %w", err)
	}
	return action.ID, nil
}

func (service *ActionService) GetAction(actionID uint, goalID uint, ownerID uint) (models.Action, error) {
	action, err := service.actions.FindByIDAndOwner(actionID, goalID, ownerID)
	if err != nil {
		return models.Action{}, mapActionLookupError(err)
	}
	return action, nil
}

func (service *ActionService) UpdateAction(actionID uint, goalID uint, ownerID uint, patch ActionPatch) error {
	action, err := service.actions.FindByIDAndOwner(actionID, goalID, ownerID)
	if err != nil {
		return mapActionLookupError(err)
	}

	if patch.Title != nil {
		action.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		action.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		if !isValidActionStatus(*patch.Status) {
			return fmt.Errorf("%w: unknown status", ErrInvalidActionInput)
		}
		action.Status = *patch.Status
	}
	if patch.Effort != nil {
		action.Effort = *patch.Effort
	}
	if patch.DueDate != nil {
		action.DueDate = patch.DueDate
	}

	if err := validateActionFields(action.Title, action.Description, action.Effort); err != nil {
		return err
	}

	if err := service.actions.Save(&action); err != nil {
		return fmt.Errorf("update action: %w", err)
	}
	return nil
}

func (service *ActionService) DeleteAction(actionID uint, goalID uint, ownerID uint) error {
	action, err := service.actions.FindByIDAndOwner(actionID, goalID, ownerID)
	if err != nil {
		return mapActionLookupError(err)
	}
	if err := service.actions.Delete(action.ID); err != nil {
		return fmt.Errorf("delete action: %w", err)
	}
	return nil
}

func validateActionFields(title string, description string, effort models.EffortLevel) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidActionInput)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title too long", ErrInvalidActionInput)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidActionInput)
	}
	if effort != "" && !isValidEffort(effort) {
		return fmt.Errorf("%w: unknown effort level", ErrInvalidActionInput)
	}
	return nil
}

func isValidActionStatus(status models.ActionStatus) bool {
	switch status {
	case models.ActionTodo, models.ActionInProgress, models.ActionDone:
		return true
	}
	return false
}

func isValidEffort(effort models.EffortLevel) bool {
	switch effort {
	case models.EffortSmall, models.EffortMedium, models.EffortLarge:
		return true
	}
	return false
}

func mapActionLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrActionNotFound
	}
	return err
}
