package models

import "time"

type ActionStatus string

const (
	ActionTodo       ActionStatus = "todo"
	ActionInProgress ActionStatus = "in_progress"
	ActionDone       ActionStatus = "done"
)

type EffortLevel string

const (
	EffortSmall  EffortLevel = "S"
	EffortMedium EffortLevel = "M"
	EffortLarge  EffortLevel = "L"
)

type Action struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	GoalID      uint         `gorm:"not null;index:idx_actions_goal_status" json:"goal_id"`
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `json:"description"`
	Status      ActionStatus `gorm:"size:20;not null;default:todo;index:idx_actions_goal_status" json:"status"`
	Effort      EffortLevel  `gorm:"size:1" json:"effort,omitempty"`
	DueDate     *time.Time   `gorm:"type:date" json:"due_date"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
