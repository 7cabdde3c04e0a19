package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/models"
	"github.com/strideapp/stride/internal/services"
)

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type goalCreateInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
	DueDate     string  `json:"due_date"`
}

type goalPatchInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	TargetValue *float64 `json:"target_value"`
	Unit        *string  `json:"unit"`
	DueDate     *string  `json:"due_date"`
}

type progressInput struct {
	Value *float64 `json:"value"`
	Note  string   `json:"note"`
}

type actionCreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Effort      string `json:"effort"`
	DueDate     string `json:"due_date"`
}

type actionPatchInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Effort      *string `json:"effort"`
	DueDate     *string `json:"due_date"`
}

type advisoryInput struct {
	GoalID uint `json:"goal_id"`
}

func parseRegisterInput(c *fiber.Ctx) (registerInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = services.NormalizeEmail(input.Email)

	if input.Name == "" || len(input.Name) > 255 {
		return registerInput{}, errors.New("invalid name")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return registerInput{}, errors.New("invalid email")
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return registerInput{}, err
	}
	return input, nil
}

func parseLoginInput(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}

	input.Email = services.NormalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return loginInput{}, errors.New("missing credentials")
	}
	return input, nil
}

// parseDateValue accepts plain dates and RFC 3339 timestamps.
func parseDateValue(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if value, err := time.Parse("2006-01-02", trimmed); err == nil {
		return &value, nil
	}
	if value, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return &value, nil
	}
	return nil, errors.New("invalid date format")
}

func (input goalCreateInput) toGoalInput() (services.GoalInput, error) {
	dueDate, err := parseDateValue(input.DueDate)
	if err != nil {
		return services.GoalInput{}, err
	}
	return services.GoalInput{
		Title:       input.Title,
		Description: input.Description,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		DueDate:     dueDate,
	}, nil
}

func (input goalPatchInput) toGoalPatch() (services.GoalPatch, error) {
	patch := services.GoalPatch{
		Title:       input.Title,
		Description: input.Description,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
	}
	if input.DueDate != nil {
		dueDate, err := parseDateValue(*input.DueDate)
		if err != nil {
			return services.GoalPatch{}, err
		}
		if dueDate == nil {
			return services.GoalPatch{}, errors.New("invalid date format")
		}
		patch.DueDate = dueDate
	}
	return patch, nil
}

func (input actionCreateInput) toActionInput() (services.ActionInput, error) {
	dueDate, err := parseDateValue(input.DueDate)
	if err != nil {
		return services.ActionInput{}, err
	}
	return services.ActionInput{
		Title:       input.Title,
		Description: input.Description,
		Effort:      models.EffortLevel(strings.TrimSpace(input.Effort)),
		DueDate:     dueDate,
	}, nil
}

func (input actionPatchInput) toActionPatch() (services.ActionPatch, error) {
	patch := services.ActionPatch{
		Title:       input.Title,
		Description: input.Description,
	}
	if input.Status != nil {
		status := models.ActionStatus(strings.TrimSpace(*input.Status))
		patch.Status = &status
	}
	if input.Effort != nil {
		effort := models.EffortLevel(strings.TrimSpace(*input.Effort))
		patch.Effort = &effort
	}
	if input.DueDate != nil {
		dueDate, err := parseDateValue(*input.DueDate)
		if err != nil {
			return services.ActionPatch{}, err
		}
		if dueDate == nil {
			return services.ActionPatch{}, errors.New("invalid date format")
		}
		patch.DueDate = dueDate
	}
	return patch, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := c.ParamsInt(name)
	if err != nil || value <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
