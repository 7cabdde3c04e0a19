package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateGoalUpdate records a progress check-in. The goal's current value,
// derived status and the history row move together in one transaction.
func (handler *Handler) CreateGoalUpdate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	input := progressInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Value == nil {
		return apiError(c, fiber.StatusBadRequest, "value is required")
	}
	if len(input.Note) > 1000 {
		return apiError(c, fiber.StatusBadRequest, "note too long")
	}

	updateID, err := handler.progressService.RecordUpdate(goalID, user.ID, *input.Value, input.Note)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, "goal update created successfully", fiber.Map{"id": updateID})
}

func (handler *Handler) ListGoalUpdates(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	// Ownership resolves through the goal; a foreign goal reads as absent.
	if _, err := handler.repositories.Goals.FindByIDAndOwner(goalID, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "goal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load goal")
	}

	request := parsePageRequest(c)
	if request.All {
		updates, err := handler.repositories.GoalUpdates.ListByGoal(goalID, 0)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to retrieve goal updates")
		}
		return respond(c, fiber.StatusOK, "goal updates retrieved successfully", updates)
	}

	updates, total, err := handler.repositories.GoalUpdates.ListByGoalPage(goalID, request.offset(), request.PerPage)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to retrieve goal updates")
	}
	return respondPage(c, fiber.StatusOK, "goal updates retrieved successfully", updates, request.metadata(total))
}
