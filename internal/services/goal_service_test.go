package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type stubGoalRepository struct {
	goal          models.Goal
	goals         []models.Goal
	findErr       error
	updateErr     error
	updatedID     uint
	updatedFields map[string]any
	created       *models.Goal
	deletedID     uint

	// afterFind runs once a lookup has taken its snapshot, so tests can
	// slip a concurrent write between read and persist.
	afterFind func()
}

func (stub *stubGoalRepository) ListByUser(uint) ([]models.Goal, error) {
	result := make([]models.Goal, len(stub.goals))
	copy(result, stub.goals)
	return result, nil
}

func (stub *stubGoalRepository) ListByUserPage(_ uint, offset int, limit int) ([]models.Goal, int64, error) {
	total := int64(len(stub.goals))
	if offset >= len(stub.goals) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(stub.goals) {
		end = len(stub.goals)
	}
	page := make([]models.Goal, end-offset)
	copy(page, stub.goals[offset:end])
	return page, total, nil
}

func (stub *stubGoalRepository) FindByIDAndOwner(uint, uint) (models.Goal, error) {
	if stub.findErr != nil {
		return models.Goal{}, stub.findErr
	}
	snapshot := stub.goal
	if stub.afterFind != nil {
		stub.afterFind()
	}
	return snapshot, nil
}

func (stub *stubGoalRepository) Create(goal *models.Goal) error {
	goal.ID = 42
	stub.created = goal
	return nil
}

func (stub *stubGoalRepository) UpdateFields(goalID uint, fields map[string]any) error {
	if stub.updateErr != nil {
		return stub.updateErr
	}
	stub.updatedID = goalID
	stub.updatedFields = fields
	if title, ok := fields["title"].(string); ok {
		stub.goal.Title = title
	}
	if description, ok := fields["description"].(string); ok {
		stub.goal.Description = description
	}
	if target, ok := fields["target_value"].(float64); ok {
		stub.goal.TargetValue = target
	}
	if unit, ok := fields["unit"].(string); ok {
		stub.goal.Unit = unit
	}
	if current, ok := fields["current_value"].(float64); ok {
		stub.goal.CurrentValue = current
	}
	if status, ok := fields["status"].(string); ok {
		stub.goal.Status = models.GoalStatus(status)
	}
	return nil
}

func (stub *stubGoalRepository) DeleteWithRelated(goalID uint, _ uint) error {
	if stub.findErr != nil {
		return stub.findErr
	}
	stub.deletedID = goalID
	return nil
}

func newTestGoalService(repo *stubGoalRepository, now time.Time) *GoalService {
	service := NewGoalService(repo)
	service.now = func() time.Time { return now }
	return service
}

func TestCreateGoalValidation(t *testing.T) {
	tests := []struct {
		name  string
		input GoalInput
	}{
		{name: "empty title", input: GoalInput{Title: "   ", TargetValue: 10}},
		{name: "title too long", input: GoalInput{Title: strings.Repeat("x", 256), TargetValue: 10}},
		{name: "zero target", input: GoalInput{Title: "Read books", TargetValue: 0}},
		{name: "negative target", input: GoalInput{Title: "Read books", TargetValue: -3}},
		{name: "description too long", input: GoalInput{Title: "Read books", TargetValue: 10, Description: strings.Repeat("d", 1001)}},
		{name: "unit too long", input: GoalInput{Title: "Read books", TargetValue: 10, Unit: strings.Repeat("u", 51)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			service := newTestGoalService(&stubGoalRepository{}, time.Now())
			if _, err := service.CreateGoal(1, testCase.input); !errors.Is(err, ErrInvalidGoalInput) {
				t.Fatalf("expected ErrInvalidGoalInput, got %v", err)
			}
		})
	}
}

func TestCreateGoalStartsOnTrack(t *testing.T) {
	repo := &stubGoalRepository{}
	service := newTestGoalService(repo, time.Now())

	goalID, err := service.CreateGoal(5, GoalInput{Title: "  Run 100 km  ", TargetValue: 100, Unit: " km "})
	if err != nil {
		t.Fatalf("CreateGoal() unexpected error: %v", err)
	}
	if goalID != 42 {
		t.Fatalf("expected created goal id 42, got %d", goalID)
	}
	if repo.created.Status != models.StatusOnTrack {
		t.Fatalf("expected new goal to start on_track, got %q", repo.created.Status)
	}
	if repo.created.Title != "Run 100 km" || repo.created.Unit != "km" {
		t.Fatalf("expected trimmed fields, got title %q unit %q", repo.created.Title, repo.created.Unit)
	}
	if repo.created.UserID != 5 {
		t.Fatalf("expected owner 5, got %d", repo.created.UserID)
	}
}

func TestGetGoalRefreshesStaleStatus(t *testing.T) {
	dueDate := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubGoalRepository{
		goal: models.Goal{ID: 9, TargetValue: 100, CurrentValue: 90, DueDate: &dueDate, Status: models.StatusOnTrack},
	}
	service := newTestGoalService(repo, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))

	goal, err := service.GetGoal(9, 1)
	if err != nil {
		t.Fatalf("GetGoal() unexpected error: %v", err)
	}
	if goal.Status != models.StatusOffTrack {
		t.Fatalf("expected refreshed status off_track, got %q", goal.Status)
	}
	if repo.updatedFields == nil {
		t.Fatalf("expected refreshed status to be persisted")
	}
	if repo.updatedFields["status"] != string(models.StatusOffTrack) {
		t.Fatalf("expected persisted status off_track, got %v", repo.updatedFields["status"])
	}
	if _, ok := repo.updatedFields["current_value"]; ok {
		t.Fatalf("status refresh must not rewrite current_value")
	}
}

func TestGetGoalSkipsWriteWhenStatusCurrent(t *testing.T) {
	repo := &stubGoalRepository{
		goal: models.Goal{ID: 9, TargetValue: 100, CurrentValue: 90, Status: models.StatusOnTrack},
	}
	service := newTestGoalService(repo, time.Now())

	if _, err := service.GetGoal(9, 1); err != nil {
		t.Fatalf("GetGoal() unexpected error: %v", err)
	}
	if repo.updatedFields != nil {
		t.Fatalf("expected no write when stored status already matches")
	}
}

func TestGetGoalMapsMissingGoal(t *testing.T) {
	service := newTestGoalService(&stubGoalRepository{findErr: gorm.ErrRecordNotFound}, time.Now())

	if _, err := service.GetGoal(9, 1); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestUpdateGoalAppliesPartialPatch(t *testing.T) {
	repo := &stubGoalRepository{
		goal: models.Goal{ID: 9, Title: "Old", Description: "keep", TargetValue: 100, CurrentValue: 60, Status: models.StatusAtRisk},
	}
	service := newTestGoalService(repo, time.Now())

	newTitle := "  New title  "
	newTarget := 70.0
	err := service.UpdateGoal(9, 1, GoalPatch{Title: &newTitle, TargetValue: &newTarget})
	if err != nil {
		t.Fatalf("UpdateGoal() unexpected error: %v", err)
	}
	if repo.goal.Title != "New title" {
		t.Fatalf("expected trimmed patched title, got %q", repo.goal.Title)
	}
	if _, ok := repo.updatedFields["description"]; ok {
		t.Fatalf("expected unpatched description to stay out of the write set")
	}
	if repo.goal.Description != "keep" {
		t.Fatalf("expected untouched description, got %q", repo.goal.Description)
	}
	// 60 of 70 crosses the on-track threshold, so the stored status moves.
	if repo.goal.Status != models.StatusOnTrack {
		t.Fatalf("expected recomputed status on_track, got %q", repo.goal.Status)
	}
}

func TestUpdateGoalKeepsConcurrentCheckinValue(t *testing.T) {
	repo := &stubGoalRepository{
		goal: models.Goal{ID: 9, Title: "Old", TargetValue: 100, CurrentValue: 20, Status: models.StatusOffTrack},
	}
	// A check-in lands between the edit's read and its write.
	repo.afterFind = func() {
		repo.goal.CurrentValue = 50
		repo.goal.Status = models.StatusAtRisk
	}
	service := newTestGoalService(repo, time.Now())

	newTitle := "Renamed"
	if err := service.UpdateGoal(9, 1, GoalPatch{Title: &newTitle}); err != nil {
		t.Fatalf("UpdateGoal() unexpected error: %v", err)
	}
	if _, ok := repo.updatedFields["current_value"]; ok {
		t.Fatalf("title edit must not write current_value")
	}
	if repo.goal.CurrentValue != 50 {
		t.Fatalf("expected check-in value 50 to survive the edit, got %v", repo.goal.CurrentValue)
	}
	if repo.goal.Title != "Renamed" {
		t.Fatalf("expected patched title, got %q", repo.goal.Title)
	}
}

func TestUpdateGoalRejectsInvalidPatch(t *testing.T) {
	repo := &stubGoalRepository{goal: models.Goal{ID: 9, Title: "Old", TargetValue: 100}}
	service := newTestGoalService(repo, time.Now())

	badTarget := -1.0
	if err := service.UpdateGoal(9, 1, GoalPatch{TargetValue: &badTarget}); !errors.Is(err, ErrInvalidGoalInput) {
		t.Fatalf("expected ErrInvalidGoalInput, got %v", err)
	}
	if repo.updatedFields != nil {
		t.Fatalf("expected no write on invalid patch")
	}
}

func TestDeleteGoalMapsMissingGoal(t *testing.T) {
	service := newTestGoalService(&stubGoalRepository{findErr: gorm.ErrRecordNotFound}, time.Now())

	if err := service.DeleteGoal(9, 1); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestListGoalsDerivesStatusesWithoutSaving(t *testing.T) {
	overdue := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubGoalRepository{
		goals: []models.Goal{
			{ID: 1, TargetValue: 100, CurrentValue: 90, Status: models.StatusOnTrack},
			{ID: 2, TargetValue: 100, CurrentValue: 90, DueDate: &overdue, Status: models.StatusOnTrack},
		},
	}
	service := newTestGoalService(repo, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))

	goals, total, err := service.ListGoals(1, 0, 10)
	if err != nil {
		t.Fatalf("ListGoals() unexpected error: %v", err)
	}
	if total != 2 || len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d (total %d)", len(goals), total)
	}
	if goals[0].Status != models.StatusOnTrack || goals[1].Status != models.StatusOffTrack {
		t.Fatalf("expected derived statuses [on_track off_track], got [%q %q]", goals[0].Status, goals[1].Status)
	}
	if repo.updatedFields != nil {
		t.Fatalf("expected list path not to persist statuses")
	}
}
