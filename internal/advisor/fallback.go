package advisor

import "github.com/strideapp/stride/internal/models"

// Fixed advisory content returned whenever the completion endpoint cannot
// be reached or its answer fails validation.

func fallbackSuggestions() []ActionSuggestion {
	return []ActionSuggestion{
		{
			Title:     "Break down your goal into smaller, daily milestones",
			Rationale: "Smaller steps make progress more manageable",
			Effort:    models.EffortMedium,
		},
		{
			Title:     "Set up a regular check-in schedule to track your progress",
			Rationale: "Consistent tracking improves momentum",
			Effort:    models.EffortSmall,
		},
		{
			Title:     "Identify and remove obstacles that might be slowing you down",
			Rationale: "Addressing blockers accelerates progress",
			Effort:    models.EffortLarge,
		},
	}
}

func fallbackSummary() CheckinSummary {
	return CheckinSummary{
		Bullets: []string{
			"Made steady progress on key milestones",
			"Momentum is building, keep going",
			"Focus on consistency to sustain improvement",
		},
		Confidence: 4,
		RiskTag:    models.StatusOnTrack,
	}
}
