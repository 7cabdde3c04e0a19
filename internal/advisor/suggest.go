package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
)

// SuggestActions proposes 3-5 next steps for a goal. updates and actions
// are expected newest first; only the most recent are embedded in the
// prompt. Failures of any kind degrade to the fixed fallback list.
func (client *Client) SuggestActions(ctx context.Context, goal models.Goal, updates []models.GoalUpdate, actions []models.Action) []ActionSuggestion {
	prompt := buildSuggestPrompt(goal, updates, actions, time.Now())

	content, err := client.complete(ctx, suggestSystemPrompt, prompt, suggestionsResponseFormat())
	if err != nil {
		log.Printf("advisor: action suggestions unavailable: %v", err)
		return fallbackSuggestions()
	}

	var parsed struct {
		Suggestions []ActionSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		log.Printf("advisor: malformed suggestions payload: %v", err)
		return fallbackSuggestions()
	}
	if err := validateSuggestions(parsed.Suggestions); err != nil {
		log.Printf("advisor: suggestions failed validation: %v", err)
		return fallbackSuggestions()
	}

	return parsed.Suggestions
}

func validateSuggestions(suggestions []ActionSuggestion) error {
	if len(suggestions) < 3 || len(suggestions) > 5 {
		return fmt.Errorf("expected 3-5 suggestions, got %d", len(suggestions))
	}
	for index, suggestion := range suggestions {
		if strings.TrimSpace(suggestion.Title) == "" {
			return fmt.Errorf("suggestion %d has empty title", index)
		}
		if strings.TrimSpace(suggestion.Rationale) == "" {
			return fmt.Errorf("suggestion %d has empty rationale", index)
		}
		switch suggestion.Effort {
		case models.EffortSmall, models.EffortMedium, models.EffortLarge:
		default:
			return fmt.Errorf("suggestion %d has invalid effort %q", index, suggestion.Effort)
		}
	}
	return nil
}
