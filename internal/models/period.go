package models

import "time"

// EvaluationPeriod is a bounded evaluation cycle. Code is unique; the
// one-active-period-at-a-time rule is a caller convention, not enforced here.
type EvaluationPeriod struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Code         string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	NameTH       string    `gorm:"column:name_th;size:255;not null" json:"name_th"`
	BuddhistYear int       `gorm:"not null" json:"buddhist_year"`
	StartDate    string    `gorm:"size:10;not null" json:"start_date"`
	EndDate      string    `gorm:"size:10;not null" json:"end_date"`
	IsActive     bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
