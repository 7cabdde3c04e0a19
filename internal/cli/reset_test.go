package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/models"
)

func TestRunResetPasswordCommandReplacesHash(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "stride-reset.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	user := models.User{Name: "Dana", Email: "dana@example.com", PasswordHash: "old-hash"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if err := RunResetPasswordCommand(databasePath, " DANA@Example.COM "); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}

	var reloaded models.User
	if err := database.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.PasswordHash == "old-hash" {
		t.Fatalf("expected password hash to be replaced")
	}
	if !strings.HasPrefix(reloaded.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", reloaded.PasswordHash)
	}
}

func TestRunResetPasswordCommandValidatesEmail(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "stride-reset-validate.db")

	if err := RunResetPasswordCommand(databasePath, ""); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if err := RunResetPasswordCommand(databasePath, "not-an-email"); err == nil {
		t.Fatalf("expected error for malformed email")
	}
}

func TestRunResetPasswordCommandUnknownUser(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "stride-reset-unknown.db")

	err := RunResetPasswordCommand(databasePath, "ghost@example.com")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
