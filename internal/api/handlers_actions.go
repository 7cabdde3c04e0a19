package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/models"
	"github.com/strideapp/stride/internal/services"
)

const dueSoonDays = 3

func (handler *Handler) ListActions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	request := parsePageRequest(c)
	filter := services.ActionFilter{
		Status:  models.ActionStatus(strings.TrimSpace(c.Query("status"))),
		Search:  c.Query("search"),
		Offset:  request.offset(),
		Limit:   request.PerPage,
		WantAll: request.All,
	}
	if strings.EqualFold(c.Query("due_soon"), "true") {
		dueBy := time.Now().AddDate(0, 0, dueSoonDays)
		filter.DueBy = &dueBy
	}

	actions, total, err := handler.actionService.ListActions(goalID, user.ID, filter)
	if err != nil {
		return serviceError(c, err)
	}

	if request.All {
		return respond(c, fiber.StatusOK, "actions retrieved successfully", actions)
	}
	return respondPage(c, fiber.StatusOK, "actions retrieved successfully", actions, request.metadata(total))
}

func (handler *Handler) CreateAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}

	input := actionCreateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	actionInput, err := input.toActionInput()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	actionID, err := handler.actionService.CreateAction(goalID, user.ID, actionInput)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, "action created successfully", fiber.Map{"id": actionID})
}

func (handler *Handler) GetAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}
	actionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid action ID")
	}

	action, err := handler.actionService.GetAction(actionID, goalID, user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "action retrieved successfully", action)
}

func (handler *Handler) UpdateAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}
	actionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid action ID")
	}

	input := actionPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	patch, err := input.toActionPatch()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.actionService.UpdateAction(actionID, goalID, user.ID, patch); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "action updated successfully", fiber.Map{"id": actionID})
}

func (handler *Handler) DeleteAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c, "goalId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal ID")
	}
	actionID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid action ID")
	}

	if err := handler.actionService.DeleteAction(actionID, goalID, user.ID); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "action deleted successfully", nil)
}
