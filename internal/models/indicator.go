package models

import "time"

// Indicator types. A score indicator carries a min/max range, a yes/no
// indicator stores a boolean value.
const (
	IndicatorTypeScore1To4 = "score_1_4"
	IndicatorTypeYesNo     = "yes_no"
)

// Indicator is a scorable criterion under an evaluation topic.
type Indicator struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TopicID     uint      `gorm:"not null" json:"topic_id"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	NameTH      string    `gorm:"column:name_th;size:255;not null" json:"name_th"`
	Description *string   `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:30;not null;default:score_1_4" json:"type"`
	Weight      float64   `gorm:"not null;default:1" json:"weight"`
	MinScore    int       `gorm:"not null;default:1" json:"min_score"`
	MaxScore    int       `gorm:"not null;default:4" json:"max_score"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// EvidenceType is a supporting-document category attachable to indicators.
type EvidenceType struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	NameTH string `gorm:"column:name_th;size:255;not null" json:"name_th"`
}

// IndicatorEvidence maps an indicator to an accepted evidence type.
type IndicatorEvidence struct {
	IndicatorID    uint `gorm:"primaryKey" json:"indicator_id"`
	EvidenceTypeID uint `gorm:"primaryKey" json:"evidence_type_id"`
}

// TableName keeps the mapping table's singular name.
func (IndicatorEvidence) TableName() string { return "indicator_evidence" }
