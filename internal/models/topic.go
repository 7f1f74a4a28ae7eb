package models

import "time"

// EvaluationTopic is a top-level evaluation category composed of indicators.
type EvaluationTopic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	TitleTH     string    `gorm:"column:title_th;size:255;not null" json:"title_th"`
	Description *string   `gorm:"type:text" json:"description"`
	Weight      float64   `gorm:"not null;default:0" json:"weight"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
