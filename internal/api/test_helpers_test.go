package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/advisor"
	"github.com/strideapp/stride/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app, _ := newTestAppWithDB(t)
	return app
}

func newTestAppWithDB(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "stride-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, "test-secret", advisor.NewClient(advisor.Config{}))

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

type testEnvelope struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Metadata *paginationMeta `json:"metadata"`
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (int, testEnvelope) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	envelope := testEnvelope{}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return response.StatusCode, envelope
}

func decodeData(t *testing.T, envelope testEnvelope, target any) {
	t.Helper()
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		t.Fatalf("decode envelope data: %v", err)
	}
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, _ := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "StrongPass1",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", email, status)
	}

	status, envelope := performJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "StrongPass1",
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: expected status 200, got %d", email, status)
	}

	var loginData struct {
		Token string `json:"token"`
	}
	decodeData(t, envelope, &loginData)
	if loginData.Token == "" {
		t.Fatalf("login %s: expected token in response", email)
	}
	return loginData.Token
}

func createTestGoal(t *testing.T, app *fiber.App, token string, title string, target float64) uint {
	t.Helper()

	status, envelope := performJSON(t, app, http.MethodPost, "/api/goals", token, map[string]any{
		"title":        title,
		"target_value": target,
		"unit":         "km",
	})
	if status != http.StatusCreated {
		t.Fatalf("create goal %q: expected status 201, got %d (%s)", title, status, envelope.Message)
	}

	var created struct {
		ID uint `json:"id"`
	}
	decodeData(t, envelope, &created)
	if created.ID == 0 {
		t.Fatalf("create goal %q: expected non-zero id", title)
	}
	return created.ID
}

func goalPath(goalID uint) string {
	return fmt.Sprintf("/api/goals/%d", goalID)
}
