package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

// apiResponse is the envelope every endpoint speaks: code mirrors the HTTP
// status, data and metadata appear only when present.
type apiResponse struct {
	Code     int             `json:"code"`
	Message  string          `json:"message,omitempty"`
	Data     any             `json:"data,omitempty"`
	Metadata *paginationMeta `json:"metadata,omitempty"`
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(apiResponse{Code: status, Message: message, Data: data})
}

func respondPage(c *fiber.Ctx, status int, message string, data any, metadata paginationMeta) error {
	return c.Status(status).JSON(apiResponse{Code: status, Message: message, Data: data, Metadata: &metadata})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(apiResponse{Code: status, Message: message})
}

// serviceError maps service sentinels onto HTTP statuses. Anything not
// recognized is a persistence-level failure and must not leak details.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrGoalNotFound):
		return apiError(c, fiber.StatusNotFound, "goal not found")
	case errors.Is(err, services.ErrActionNotFound):
		return apiError(c, fiber.StatusNotFound, "action not found")
	case errors.Is(err, services.ErrInvalidGoalInput),
		errors.Is(err, services.ErrInvalidActionInput),
		errors.Is(err, services.ErrInvalidProgressValue),
		errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, "email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
