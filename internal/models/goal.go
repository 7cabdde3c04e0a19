package models

import "time"

type GoalStatus string

const (
	StatusOnTrack  GoalStatus = "on_track"
	StatusAtRisk   GoalStatus = "at_risk"
	StatusOffTrack GoalStatus = "off_track"
)

type Goal struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index:idx_goals_user_status" json:"user_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `json:"description"`
	TargetValue  float64    `gorm:"not null" json:"target_value"`
	CurrentValue float64    `gorm:"not null;default:0" json:"current_value"`
	Unit         string     `gorm:"size:50" json:"unit"`
	DueDate      *time.Time `gorm:"type:date" json:"due_date"`
	Status       GoalStatus `gorm:"size:20;not null;default:on_track;index:idx_goals_user_status" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
