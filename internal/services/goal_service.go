package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidGoalInput = errors.New("invalid goal input")

const (
	maxTitleLength       = 255
	maxDescriptionLength = 1000
	maxUnitLength        = 50
)

type GoalRepository interface {
	ListByUser(userID uint) ([]models.Goal, error)
	ListByUserPage(userID uint, offset int, limit int) ([]models.Goal, int64, error)
	FindByIDAndOwner(goalID uint, ownerID uint) (models.Goal, error)
	Create(goal *models.Goal) error
	UpdateFields(goalID uint, fields map[string]any) error
	DeleteWithRelated(goalID uint, ownerID uint) error
}

type GoalInput struct {
	Title       string
	Description string
	TargetValue float64
	Unit        string
	DueDate     *time.Time
}

// GoalPatch carries a partial edit; nil fields are left untouched.
// CurrentValue is deliberately absent — it only moves through check-ins.
type GoalPatch struct {
	Title       *string
	Description *string
	TargetValue *float64
	Unit        *string
	DueDate     *time.Time
}

type GoalService struct {
	goals GoalRepository
	now   func() time.Time
}

func NewGoalService(goals GoalRepository) *GoalService {
	return &GoalService{goals: goals, now: time.Now}
}

func (service *GoalService) CreateGoal(ownerID uint, input GoalInput) (uint, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateGoalFields(input.Title, input.Description, input.TargetValue, input.Unit); err != nil {
		return 0, err
	}

	goal := models.Goal{
		UserID:      ownerID,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		TargetValue: input.TargetValue,
		Unit:        strings.TrimSpace(input.Unit),
		DueDate:     input.DueDate,
		Status:      models.StatusOnTrack,
	}
	if err := service.goals.Create(&goal); err != nil {
		return 0, fmt.Errorf("create goal: %w", err)
	}
	return goal.ID, nil
}

// GetGoal returns a goal with its status freshly derived. A refreshed
// status is persisted so the stored column catches up with reality.
func (service *GoalService) GetGoal(goalID uint, ownerID uint) (models.Goal, error) {
	goal, err := service.goals.FindByIDAndOwner(goalID, ownerID)
	if err != nil {
		return models.Goal{}, mapGoalLookupError(err)
	}

	derived := GoalStatusAt(goal, service.now())
	if derived != goal.Status {
		goal.Status = derived
		fields := map[string]any{
			"status":     string(derived),
			"updated_at": service.now(),
		}
		if err := service.goals.UpdateFields(goal.ID, fields); err != nil {
			return models.Goal{}, fmt.Errorf("refresh goal status: %w", err)
		}
	}
	return goal, nil
}

// ListGoals pages a user's goals newest first. Statuses are derived at read
// time; the stored column is not rewritten on list paths.
func (service *GoalService) ListGoals(ownerID uint, offset int, limit int) ([]models.Goal, int64, error) {
	goals, total, err := service.goals.ListByUserPage(ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list goals: %w", err)
	}
	service.refreshStatuses(goals)
	return goals, total, nil
}

func (service *GoalService) ListAllGoals(ownerID uint) ([]models.Goal, error) {
	goals, err := service.goals.ListByUser(ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	service.refreshStatuses(goals)
	return goals, nil
}

func (service *GoalService) UpdateGoal(goalID uint, ownerID uint, patch GoalPatch) error {
	goal, err := service.goals.FindByIDAndOwner(goalID, ownerID)
	if err != nil {
		return mapGoalLookupError(err)
	}

	// Only the patched columns are written back. Check-ins move
	// current_value concurrently, so a whole-row save here could revert a
	// check-in that committed after the read above.
	fields := map[string]any{}
	if patch.Title != nil {
		goal.Title = strings.TrimSpace(*patch.Title)
		fields["title"] = goal.Title
	}
	if patch.Description != nil {
		goal.Description = strings.TrimSpace(*patch.Description)
		fields["description"] = goal.Description
	}
	if patch.TargetValue != nil {
		goal.TargetValue = *patch.TargetValue
		fields["target_value"] = goal.TargetValue
	}
	if patch.Unit != nil {
		goal.Unit = strings.TrimSpace(*patch.Unit)
		fields["unit"] = goal.Unit
	}
	if patch.DueDate != nil {
		goal.DueDate = patch.DueDate
		fields["due_date"] = goal.DueDate
	}

	if err := validateGoalFields(goal.Title, goal.Description, goal.TargetValue, goal.Unit); err != nil {
		return err
	}

	// Target and due date feed the derived status; keep the stored column
	// consistent on every write that touches them.
	fields["status"] = string(GoalStatusAt(goal, service.now()))
	fields["updated_at"] = service.now()

	if err := service.goals.UpdateFields(goal.ID, fields); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

func (service *GoalService) DeleteGoal(goalID uint, ownerID uint) error {
	if err := service.goals.DeleteWithRelated(goalID, ownerID); err != nil {
		return mapGoalLookupError(err)
	}
	return nil
}

func (service *GoalService) refreshStatuses(goals []models.Goal) {
	now := service.now()
	for index := range goals {
		goals[index].Status = GoalStatusAt(goals[index], now)
	}
}

func validateGoalFields(title string, description string, targetValue float64, unit string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidGoalInput)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title too long", ErrInvalidGoalInput)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidGoalInput)
	}
	if targetValue <= 0 {
		return fmt.Errorf("%w: target value must be positive", ErrInvalidGoalInput)
	}
	if len(unit) > maxUnitLength {
		return fmt.Errorf("%w: unit too long", ErrInvalidGoalInput)
	}
	return nil
}

func mapGoalLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGoalNotFound
	}
	return err
}
