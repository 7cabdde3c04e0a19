package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("/stats/dashboard", handler.DashboardStats)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.CreateGoal)
	goals.Get("/:id", handler.GetGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Get("/:id/updates", handler.ListGoalUpdates)
	goals.Post("/:id/updates", handler.CreateGoalUpdate)

	actions := api.Group("/goals/:goalId/actions", handler.AuthRequired)
	actions.Get("", handler.ListActions)
	actions.Post("", handler.CreateAction)
	actions.Get("/:id", handler.GetAction)
	actions.Patch("/:id", handler.UpdateAction)
	actions.Delete("/:id", handler.DeleteAction)

	ai := api.Group("/ai", handler.AuthRequired)
	ai.Post("/suggest-actions", handler.SuggestActions)
	ai.Post("/summarize-checkin", handler.SummarizeCheckin)
}
