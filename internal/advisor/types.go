package advisor

import "github.com/strideapp/stride/internal/models"

// ActionSuggestion is a single AI-proposed next step for a goal.
type ActionSuggestion struct {
	Title     string             `json:"title"`
	Rationale string             `json:"rationale"`
	Effort    models.EffortLevel `json:"effort"`
}

// CheckinSummary condenses a goal's recent progress into a few bullets with
// a confidence score and a coarse risk assessment.
type CheckinSummary struct {
	Bullets    []string          `json:"bullets"`
	Confidence int               `json:"confidence"`
	RiskTag    models.GoalStatus `json:"risk_tag"`
}
