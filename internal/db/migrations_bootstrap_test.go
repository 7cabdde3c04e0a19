package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteBootstrapsSchema(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "stride-bootstrap.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("OpenSQLite() returned error: %v", err)
	}

	for _, table := range []string{"users", "goals", "actions", "goal_updates", "schema_migrations"} {
		var count int64
		err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist after bootstrap", table)
		}
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "stride-reopen.db")
	if _, err := OpenSQLite(databasePath); err != nil {
		t.Fatalf("first open returned error: %v", err)
	}

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("second open returned error: %v", err)
	}

	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied < 1 {
		t.Fatalf("expected at least one recorded migration, got %d", applied)
	}

	// Each version recorded exactly once even after a second bootstrap.
	var distinct int64
	if err := database.Raw(`SELECT COUNT(DISTINCT version) FROM schema_migrations`).Scan(&distinct).Error; err != nil {
		t.Fatalf("count distinct versions: %v", err)
	}
	if distinct != applied {
		t.Fatalf("expected %d distinct versions, got %d", applied, distinct)
	}
}

func TestUsersEmailUniqueIndex(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "stride-email-index.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("OpenSQLite() returned error: %v", err)
	}

	insert := `INSERT INTO users(name, email, password_hash) VALUES (?, ?, ?)`
	if err := database.Exec(insert, "Dana", "dana@example.com", "hash").Error; err != nil {
		t.Fatalf("insert first user: %v", err)
	}
	if err := database.Exec(insert, "Dana Again", "dana@example.com", "hash").Error; err == nil {
		t.Fatalf("expected duplicate email insert to violate unique index")
	}
}
