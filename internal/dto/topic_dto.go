package dto

import (
	"time"

	"github.com/okoak/evaluation-api/internal/models"
)

// TopicCreateRequest describes the payload for creating an evaluation topic.
type TopicCreateRequest struct {
	Code        string  `json:"code" validate:"required"`
	TitleTH     string  `json:"title_th" validate:"required"`
	Description *string `json:"description"`
	Weight      float64 `json:"weight"`
	Active      *bool   `json:"active"`
}

// TopicUpdateRequest describes a partial update; absent fields stay untouched.
type TopicUpdateRequest struct {
	Code        *string          `json:"code" validate:"omitempty,min=1"`
	TitleTH     *string          `json:"title_th" validate:"omitempty,min=1"`
	Description Optional[string] `json:"description"`
	Weight      *float64         `json:"weight"`
	Active      *bool            `json:"active"`
}

// TopicResponse is the serialized representation returned to API clients.
type TopicResponse struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	TitleTH     string    `json:"title_th"`
	Description *string   `json:"description"`
	Weight      float64   `json:"weight"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTopicResponse converts a model into a DTO.
func NewTopicResponse(model models.EvaluationTopic) TopicResponse {
	return TopicResponse{
		ID:          model.ID,
		Code:        model.Code,
		TitleTH:     model.TitleTH,
		Description: model.Description,
		Weight:      model.Weight,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
	}
}

// NewTopicResponseSlice converts a slice of models into DTOs.
func NewTopicResponseSlice(topics []models.EvaluationTopic) []TopicResponse {
	responses := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, NewTopicResponse(topic))
	}

	return responses
}
