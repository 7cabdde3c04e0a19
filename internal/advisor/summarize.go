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

// SummarizeCheckin condenses a goal's check-in history into a short
// summary. updates are expected newest first. Failures of any kind degrade
// to the fixed fallback summary, including for goals with no history yet.
func (client *Client) SummarizeCheckin(ctx context.Context, goal models.Goal, updates []models.GoalUpdate, actions []models.Action) CheckinSummary {
	prompt := buildSummaryPrompt(goal, updates, actions, time.Now())

	content, err := client.complete(ctx, summarySystemPrompt, prompt, summaryResponseFormat())
	if err != nil {
		log.Printf("advisor: check-in summary unavailable: %v", err)
		return fallbackSummary()
	}

	var parsed CheckinSummary
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		log.Printf("advisor: malformed summary payload: %v", err)
		return fallbackSummary()
	}
	if err := validateSummary(parsed); err != nil {
		log.Printf("advisor: summary failed validation: %v", err)
		return fallbackSummary()
	}

	return parsed
}

func validateSummary(summary CheckinSummary) error {
	if len(summary.Bullets) < 3 || len(summary.Bullets) > 5 {
		return fmt.Errorf("expected 3-5 bullets, got %d", len(summary.Bullets))
	}
	for index, bullet := range summary.Bullets {
		if strings.TrimSpace(bullet) == "" {
			return fmt.Errorf("bullet %d is empty", index)
		}
	}
	if summary.Confidence < 1 || summary.Confidence > 5 {
		return fmt.Errorf("confidence %d out of range", summary.Confidence)
	}
	switch summary.RiskTag {
	case models.StatusOnTrack, models.StatusAtRisk, models.StatusOffTrack:
	default:
		return fmt.Errorf("invalid risk tag %q", summary.RiskTag)
	}
	return nil
}
