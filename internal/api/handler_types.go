package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/strideapp/stride/internal/advisor"
	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/models"
	"github.com/strideapp/stride/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	secretKey []byte
	advisor   *advisor.Client

	repositories    *db.Repositories
	authService     *services.AuthService
	goalService     *services.GoalService
	progressService *services.ProgressService
	actionService   *services.ActionService
	statsService    *services.StatsService

	loginLimiter *loginAttemptLimiter
}

const (
	authTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

const contextUserKey = "current_user"

func NewHandler(database *gorm.DB, secretKey string, advisoryClient *advisor.Client) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		advisor:      advisoryClient,
		loginLimiter: newLoginAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.goalService = services.NewGoalService(handler.repositories.Goals)
	handler.progressService = services.NewProgressService(handler.repositories.Goals)
	handler.actionService = services.NewActionService(handler.repositories.Actions, handler.repositories.Goals)
	handler.statsService = services.NewStatsService(handler.repositories.Goals, handler.repositories.Actions)
	return handler
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
