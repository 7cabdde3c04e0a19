package advisor

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/strideapp/stride/internal/models"
)

const suggestSystemPrompt = `You are an expert goal achievement coach. Analyze the user's goal progress and propose specific, actionable steps toward the target.

GUIDELINES:
- Provide 3-5 specific, actionable suggestions
- Consider the current progress, recent check-ins and open actions
- Be encouraging but realistic
- Return suggestions as a JSON object strictly following the provided JSON schema

Each suggestion must include:
- title: a specific, actionable step
- rationale: a short explanation of why this step helps
- effort: one of "S", "M", "L" for small, medium, large effort`

const summarySystemPrompt = `You are an expert goal tracking analyst. Provide an insightful, encouraging summary of goal progress based on recent check-ins.

GUIDELINES:
- Analyze the progress made since the last check-in
- Highlight achievements and positive momentum
- Keep the summary concise but meaningful
- Focus on the journey and progress, not just numbers
- Return a JSON object strictly following the provided JSON schema`

func buildSuggestPrompt(goal models.Goal, updates []models.GoalUpdate, actions []models.Action, now time.Time) string {
	var builder strings.Builder

	writeGoalContext(&builder, goal)

	builder.WriteString("\nRecent Updates:\n")
	if len(updates) == 0 {
		builder.WriteString("- No check-ins recorded yet\n")
	}
	for _, update := range limitUpdates(updates, 3) {
		builder.WriteString(formatUpdateLine(update, goal.Unit))
	}

	builder.WriteString("\nOpen Actions:\n")
	openActions := openActionsCapped(actions, 3)
	if len(openActions) == 0 {
		builder.WriteString("- No open actions\n")
	}
	for _, action := range openActions {
		builder.WriteString(formatActionLine(action, now))
	}

	builder.WriteString("\nPlease provide specific action suggestions to help achieve this goal as per the JSON schema.")
	return builder.String()
}

func buildSummaryPrompt(goal models.Goal, updates []models.GoalUpdate, actions []models.Action, now time.Time) string {
	var builder strings.Builder

	writeGoalContext(&builder, goal)

	if len(updates) == 0 {
		builder.WriteString("\nThis is the initial check-in for this goal.\n")
	} else {
		latest := updates[0]
		delta := latest.NewValue - latest.PreviousValue
		builder.WriteString("\nLatest Check-in:\n")
		builder.WriteString(formatUpdateLine(latest, goal.Unit))
		builder.WriteString(fmt.Sprintf("- Change: %+g %s\n", delta, goal.Unit))

		if older := limitUpdates(updates[1:], 5); len(older) > 0 {
			builder.WriteString("\nEarlier Check-ins:\n")
			for _, update := range older {
				builder.WriteString(formatUpdateLine(update, goal.Unit))
			}
		}
	}

	builder.WriteString("\nAction Status:\n")
	builder.WriteString(formatActionBreakdown(actions))
	for _, action := range soonestDueOpenActions(actions, 3) {
		builder.WriteString(formatActionLine(action, now))
	}

	builder.WriteString("\nPlease provide an encouraging summary of the progress made.")
	return builder.String()
}

func writeGoalContext(builder *strings.Builder, goal models.Goal) {
	builder.WriteString(fmt.Sprintf("Goal: %s\n", goal.Title))
	builder.WriteString(fmt.Sprintf("Description: %s\n", goal.Description))
	builder.WriteString(fmt.Sprintf("Target: %g %s\n", goal.TargetValue, goal.Unit))
	builder.WriteString(fmt.Sprintf("Current Progress: %g %s\n", goal.CurrentValue, goal.Unit))
	builder.WriteString(fmt.Sprintf("Progress Percentage: %d%%\n", progressPercent(goal)))
}

func progressPercent(goal models.Goal) int {
	if goal.TargetValue <= 0 {
		return 0
	}
	return int(math.Round(goal.CurrentValue / goal.TargetValue * 100))
}

func formatUpdateLine(update models.GoalUpdate, unit string) string {
	line := fmt.Sprintf("- %s: %g -> %g %s", update.CreatedAt.Format("Jan 2, 2006"), update.PreviousValue, update.NewValue, unit)
	if notes := strings.TrimSpace(update.Notes); notes != "" {
		line += fmt.Sprintf(" (%s)", notes)
	}
	return line + "\n"
}

func formatActionLine(action models.Action, now time.Time) string {
	line := fmt.Sprintf("- %s [status: %s", action.Title, action.Status)
	if action.Effort != "" {
		line += fmt.Sprintf(", effort: %s", action.Effort)
	}
	if bucket := dueProximityBucket(action.DueDate, now); bucket != "" {
		line += fmt.Sprintf(", %s", bucket)
	}
	line += "]"
	if description := strings.TrimSpace(action.Description); description != "" {
		line += fmt.Sprintf(": %s", description)
	}
	return line + "\n"
}

func formatActionBreakdown(actions []models.Action) string {
	var todo, inProgress, done int
	for _, action := range actions {
		switch action.Status {
		case models.ActionTodo:
			todo++
		case models.ActionInProgress:
			inProgress++
		case models.ActionDone:
			done++
		}
	}
	return fmt.Sprintf("- %d todo, %d in progress, %d done\n", todo, inProgress, done)
}

// dueProximityBucket frames a due date relative to now: overdue, due-today,
// due-soon (within 3 days) or due-later. Empty for actions without one.
func dueProximityBucket(dueDate *time.Time, now time.Time) string {
	if dueDate == nil {
		return ""
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, now.Location())

	switch days := int(due.Sub(today).Hours() / 24); {
	case days < 0:
		return "overdue"
	case days == 0:
		return "due-today"
	case days <= 3:
		return "due-soon"
	default:
		return "due-later"
	}
}

func limitUpdates(updates []models.GoalUpdate, limit int) []models.GoalUpdate {
	if len(updates) > limit {
		return updates[:limit]
	}
	return updates
}

func openActionsCapped(actions []models.Action, limit int) []models.Action {
	open := make([]models.Action, 0, limit)
	for _, action := range actions {
		if action.Status == models.ActionDone {
			continue
		}
		open = append(open, action)
		if len(open) == limit {
			break
		}
	}
	return open
}

// soonestDueOpenActions picks up to limit non-completed actions ordered by
// due date, actions without one last.
func soonestDueOpenActions(actions []models.Action, limit int) []models.Action {
	open := make([]models.Action, 0, len(actions))
	for _, action := range actions {
		if action.Status != models.ActionDone {
			open = append(open, action)
		}
	}

	sort.SliceStable(open, func(i, j int) bool {
		return actionDueBefore(open[i], open[j])
	})

	if len(open) > limit {
		open = open[:limit]
	}
	return open
}

func actionDueBefore(left models.Action, right models.Action) bool {
	switch {
	case left.DueDate == nil:
		return false
	case right.DueDate == nil:
		return true
	default:
		return left.DueDate.Before(*right.DueDate)
	}
}
