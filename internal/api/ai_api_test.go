package api

import (
	"net/http"
	"testing"

	"github.com/strideapp/stride/internal/models"
)

// The test app is built without an advisor API key, so the advisory
// endpoints serve fallback content over HTTP.

func TestSuggestActionsServesFallbackWithoutProvider(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ai@example.com")
	goalID := createTestGoal(t, app, token, "Run 100 km", 100)

	status, envelope := performJSON(t, app, http.MethodPost, "/api/ai/suggest-actions", token, map[string]any{"goal_id": goalID})
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}

	var suggestions []struct {
		Title     string             `json:"title"`
		Rationale string             `json:"rationale"`
		Effort    models.EffortLevel `json:"effort"`
	}
	decodeData(t, envelope, &suggestions)
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 fallback suggestions, got %d", len(suggestions))
	}
	for index, suggestion := range suggestions {
		if suggestion.Title == "" || suggestion.Rationale == "" {
			t.Fatalf("suggestion %d incomplete: %+v", index, suggestion)
		}
	}
}

func TestSummarizeCheckinServesFallbackWithoutProvider(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ai@example.com")
	goalID := createTestGoal(t, app, token, "Run 100 km", 100)
	if status, _ := postCheckin(t, app, token, goalID, 40, "first month"); status != http.StatusCreated {
		t.Fatalf("seed check-in failed")
	}

	status, envelope := performJSON(t, app, http.MethodPost, "/api/ai/summarize-checkin", token, map[string]any{"goal_id": goalID})
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}

	var summary struct {
		Bullets    []string          `json:"bullets"`
		Confidence int               `json:"confidence"`
		RiskTag    models.GoalStatus `json:"risk_tag"`
	}
	decodeData(t, envelope, &summary)
	if len(summary.Bullets) != 3 {
		t.Fatalf("expected 3 fallback bullets, got %d", len(summary.Bullets))
	}
	if summary.Confidence != 4 {
		t.Fatalf("expected fallback confidence 4, got %d", summary.Confidence)
	}
	if summary.RiskTag != models.StatusOnTrack {
		t.Fatalf("expected fallback risk tag on_track, got %q", summary.RiskTag)
	}
}

func TestAdvisoryEndpointsRequireGoalID(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ai@example.com")

	for _, path := range []string{"/api/ai/suggest-actions", "/api/ai/summarize-checkin"} {
		if status, _ := performJSON(t, app, http.MethodPost, path, token, map[string]any{}); status != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400 without goal_id, got %d", path, status)
		}
	}
}

func TestAdvisoryEndpointsRejectForeignGoal(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	ownerToken := registerAndLogin(t, app, "owner@example.com")
	otherToken := registerAndLogin(t, app, "other@example.com")
	goalID := createTestGoal(t, app, ownerToken, "Private goal", 100)

	for _, path := range []string{"/api/ai/suggest-actions", "/api/ai/summarize-checkin"} {
		if status, _ := performJSON(t, app, http.MethodPost, path, otherToken, map[string]any{"goal_id": goalID}); status != http.StatusNotFound {
			t.Fatalf("%s: expected status 404 for foreign goal, got %d", path, status)
		}
	}
}
