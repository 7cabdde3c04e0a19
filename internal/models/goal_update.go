package models

import "time"

// GoalUpdate is an append-only history record of a progress check-in.
// Rows are created by the progress-update workflow and never mutated.
type GoalUpdate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GoalID        uint      `gorm:"not null;index" json:"goal_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	PreviousValue float64   `gorm:"not null" json:"previous_value"`
	NewValue      float64   `gorm:"not null" json:"new_value"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
