package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) DashboardStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.statsService.DashboardOverview(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, "dashboard stats retrieved successfully", stats)
}
