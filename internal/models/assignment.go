package models

import "time"

// Assignment pairs one evaluator with one evaluatee within a period,
// optionally scoped to a department. The (period, evaluator, evaluatee)
// triple is unique.
type Assignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PeriodID    uint      `gorm:"not null;index" json:"period_id"`
	EvaluatorID uint      `gorm:"not null;index" json:"evaluator_id"`
	EvaluateeID uint      `gorm:"not null;index" json:"evaluatee_id"`
	DeptID      *uint     `json:"dept_id"`
	CreatedAt   time.Time `json:"created_at"`
}
