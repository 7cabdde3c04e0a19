package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/strideapp/stride/internal/advisor"
	"github.com/strideapp/stride/internal/api"
	"github.com/strideapp/stride/internal/cli"
	"github.com/strideapp/stride/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "stride.db"))
	port := getEnv("PORT", "8080")

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: stride reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(dbPath, os.Args[2]); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	advisoryClient := advisor.NewClient(advisor.Config{
		APIKey:  os.Getenv("OPENROUTER_API_KEY"),
		BaseURL: getEnv("OPENROUTER_BASE_URL", advisor.DefaultBaseURL),
		Model:   getEnv("OPENROUTER_MODEL", advisor.DefaultModel),
	})

	handler := api.NewHandler(database, secretKey, advisoryClient)

	app := fiber.New(fiber.Config{
		AppName:               "Stride",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Stride listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
