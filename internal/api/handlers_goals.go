package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := parsePageRequest(c)
	if request.All {
		goals, err := handler.goalService.ListAllGoals(user.ID)
		if err != nil {
			return serviceError(c, err)
		}
		return respond(c, fiber.StatusOK, "goals retrieved successfully", goals)
	}

	goals, total, err := handler.goalService.ListGoals(user.ID, request.offset(), request.PerPage)
	if err != nil {
		return serviceError(c, err)
	}
	return respondPage(c, fiber.StatusOK, "goals retrieved successfully", goals, request.metadata(total))
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	goal, err := handler.goalService.GetGoal(goalID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "goal retrieved successfully", goal)
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := goalCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	goalInput, err := input.toGoalInput()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goalID, err := handler.goalService.CreateGoal(user.ID, goalInput)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, "goal created successfully", fiber.Map{"id": goalID})
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	input := goalPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	patch, err := input.toGoalPatch()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.goalService.UpdateGoal(goalID, user.ID, patch); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "goal updated successfully", fiber.Map{"id": goalID})
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	if err := handler.goalService.DeleteGoal(goalID, user.ID); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "goal deleted successfully", nil)
}
