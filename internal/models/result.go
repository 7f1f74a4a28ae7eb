package models

import "time"

// Result lifecycle statuses. Every result starts as a draft; later statuses
// are written through update only.
const (
	ResultStatusDraft     = "draft"
	ResultStatusSubmitted = "submitted"
)

// EvaluationResult records a single indicator observation by an evaluator
// for an evaluatee within a period.
type EvaluationResult struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PeriodID    uint      `gorm:"not null;index" json:"period_id"`
	EvaluateeID uint      `gorm:"not null;index" json:"evaluatee_id"`
	EvaluatorID uint      `gorm:"not null;index" json:"evaluator_id"`
	TopicID     uint      `gorm:"not null;index" json:"topic_id"`
	IndicatorID uint      `gorm:"not null;index" json:"indicator_id"`
	Score       *float64  `json:"score"`
	ValueYesNo  *bool     `json:"value_yes_no"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	Status      string    `gorm:"size:20;not null;default:draft" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
