package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Advisory endpoints never fail on provider errors: the advisor degrades to
// fallback content internally. Only bad input or a missing goal errors here.

func (handler *Handler) SuggestActions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := advisoryInput{}
	if err := c.BodyParser(&input); err != nil || input.GoalID == 0 {
		return apiError(c, fiber.StatusBadRequest, "goal ID is required")
	}

	goal, err := handler.repositories.Goals.FindByIDAndOwner(input.GoalID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "goal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal")
	}

	recentUpdates, err := handler.repositories.GoalUpdates.ListByGoal(goal.ID, 3)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal updates")
	}
	recentActions, err := handler.repositories.Actions.ListRecentByGoal(goal.ID, 3)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load actions")
	}

	suggestions := handler.advisor.SuggestActions(c.Context(), goal, recentUpdates, recentActions)
	return respond(c, fiber.StatusOK, "action suggestions generated successfully", suggestions)
}

func (handler *Handler) SummarizeCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := advisoryInput{}
	if err := c.BodyParser(&input); err != nil || input.GoalID == 0 {
		return apiError(c, fiber.StatusBadRequest, "goal ID is required")
	}

	goal, err := handler.repositories.Goals.FindByIDAndOwner(input.GoalID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "goal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal")
	}

	updates, err := handler.repositories.GoalUpdates.ListByGoal(goal.ID, 0)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal updates")
	}
	actions, err := handler.repositories.Actions.ListRecentByGoal(goal.ID, 0)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load actions")
	}

	summary := handler.advisor.SummarizeCheckin(c.Context(), goal, updates, actions)
	return respond(c, fiber.StatusOK, "check-in summary generated successfully", summary)
}
