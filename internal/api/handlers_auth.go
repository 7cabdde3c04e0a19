package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := parseRegisterInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := handler.authService.RegisterUser(input.Name, input.Email, input.Password); err != nil {
		return serviceError(c, err)
	}

	return respond(c, fiber.StatusCreated, "user created successfully", nil)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseLoginInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	limiterKey := loginAttemptKey(input.Email, c.IP())
	if handler.loginLimiter.blocked(limiterKey, time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, time.Now())
		return serviceError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return respond(c, fiber.StatusOK, "login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return respond(c, fiber.StatusOK, "user profile retrieved successfully", user)
}
