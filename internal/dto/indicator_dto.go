package dto

import (
	"time"

	"github.com/okoak/evaluation-api/internal/models"
)

// IndicatorCreateRequest describes the payload for creating an indicator.
// Zero-valued optional fields fall back to the defaults the service applies.
type IndicatorCreateRequest struct {
	TopicID         uint     `json:"topic_id" validate:"required"`
	Code            string   `json:"code" validate:"required"`
	NameTH          string   `json:"name_th" validate:"required"`
	Description     *string  `json:"description"`
	Type            string   `json:"type"`
	Weight          *float64 `json:"weight"`
	MinScore        *int     `json:"min_score"`
	MaxScore        *int     `json:"max_score"`
	Active          *bool    `json:"active"`
	EvidenceTypeIDs []uint   `json:"evidence_type_ids"`
}

// IndicatorUpdateRequest describes a partial update. EvidenceTypeIDs, when
// present, replaces the full evidence mapping set.
type IndicatorUpdateRequest struct {
	TopicID         *uint            `json:"topic_id"`
	Code            *string          `json:"code" validate:"omitempty,min=1"`
	NameTH          *string          `json:"name_th" validate:"omitempty,min=1"`
	Description     Optional[string] `json:"description"`
	Type            *string          `json:"type"`
	Weight          *float64         `json:"weight"`
	MinScore        *int             `json:"min_score"`
	MaxScore        *int             `json:"max_score"`
	Active          *bool            `json:"active"`
	EvidenceTypeIDs Optional[[]uint] `json:"evidence_type_ids"`
}

// EvidenceTypeResponse is the evidence-type association shape returned on get.
type EvidenceTypeResponse struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	NameTH string `json:"name_th"`
}

// IndicatorResponse is the serialized representation returned to API clients.
type IndicatorResponse struct {
	ID            uint                   `json:"id"`
	TopicID       uint                   `json:"topic_id"`
	Code          string                 `json:"code"`
	NameTH        string                 `json:"name_th"`
	Description   *string                `json:"description"`
	Type          string                 `json:"type"`
	Weight        float64                `json:"weight"`
	MinScore      int                    `json:"min_score"`
	MaxScore      int                    `json:"max_score"`
	Active        bool                   `json:"active"`
	CreatedAt     time.Time              `json:"created_at"`
	EvidenceTypes []EvidenceTypeResponse `json:"evidence_types,omitempty"`
}

// NewIndicatorResponse converts a model into a DTO.
func NewIndicatorResponse(model models.Indicator) IndicatorResponse {
	return IndicatorResponse{
		ID:          model.ID,
		TopicID:     model.TopicID,
		Code:        model.Code,
		NameTH:      model.NameTH,
		Description: model.Description,
		Type:        model.Type,
		Weight:      model.Weight,
		MinScore:    model.MinScore,
		MaxScore:    model.MaxScore,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
	}
}

// NewIndicatorResponseSlice converts a slice of models into DTOs.
func NewIndicatorResponseSlice(indicators []models.Indicator) []IndicatorResponse {
	responses := make([]IndicatorResponse, 0, len(indicators))
	for _, indicator := range indicators {
		responses = append(responses, NewIndicatorResponse(indicator))
	}

	return responses
}

// NewEvidenceTypeResponseSlice converts evidence-type models into DTOs.
func NewEvidenceTypeResponseSlice(types []models.EvidenceType) []EvidenceTypeResponse {
	responses := make([]EvidenceTypeResponse, 0, len(types))
	for _, evidenceType := range types {
		responses = append(responses, EvidenceTypeResponse{
			ID:     evidenceType.ID,
			Code:   evidenceType.Code,
			NameTH: evidenceType.NameTH,
		})
	}

	return responses
}
