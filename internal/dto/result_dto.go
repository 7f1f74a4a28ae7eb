package dto

import (
	"time"

	"github.com/okoak/evaluation-api/internal/repository"
)

// ResultCreateRequest describes the payload for recording an evaluation
// result. A caller-supplied status is ignored; results always start as drafts.
type ResultCreateRequest struct {
	PeriodID    uint     `json:"period_id" validate:"required"`
	EvaluateeID uint     `json:"evaluatee_id" validate:"required"`
	EvaluatorID uint     `json:"evaluator_id" validate:"required"`
	TopicID     uint     `json:"topic_id" validate:"required"`
	IndicatorID uint     `json:"indicator_id" validate:"required"`
	Score       *float64 `json:"score"`
	ValueYesNo  *bool    `json:"value_yes_no"`
	Notes       string   `json:"notes"`
	Status      string   `json:"status"`
}

// ResultUpdateRequest covers the mutable subset. Identity and foreign-key
// fields are immutable after creation.
type ResultUpdateRequest struct {
	Score      Optional[float64] `json:"score"`
	ValueYesNo Optional[bool]    `json:"value_yes_no"`
	Notes      Optional[string]  `json:"notes"`
	Status     *string           `json:"status"`
}

// ResultListRequest carries the optional list filters.
type ResultListRequest struct {
	PeriodID    *uint
	EvaluatorID *uint
	EvaluateeID *uint
	TopicID     *uint
	IndicatorID *uint
	Status      string
}

// ResultResponse is the serialized representation with denormalized
// reference display names.
type ResultResponse struct {
	ID            uint      `json:"id"`
	PeriodID      uint      `json:"period_id"`
	EvaluateeID   uint      `json:"evaluatee_id"`
	EvaluatorID   uint      `json:"evaluator_id"`
	TopicID       uint      `json:"topic_id"`
	IndicatorID   uint      `json:"indicator_id"`
	Score         *float64  `json:"score"`
	ValueYesNo    *bool     `json:"value_yes_no"`
	Notes         *string   `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PeriodName    string    `json:"period_name,omitempty"`
	TopicName     string    `json:"topic_name,omitempty"`
	IndicatorName string    `json:"indicator_name,omitempty"`
	EvaluatorName string    `json:"evaluator_name,omitempty"`
	EvaluateeName string    `json:"evaluatee_name,omitempty"`
}

// NewResultResponse converts a joined repository row into a DTO.
func NewResultResponse(row repository.ResultRow) ResultResponse {
	return ResultResponse{
		ID:            row.ID,
		PeriodID:      row.PeriodID,
		EvaluateeID:   row.EvaluateeID,
		EvaluatorID:   row.EvaluatorID,
		TopicID:       row.TopicID,
		IndicatorID:   row.IndicatorID,
		Score:         row.Score,
		ValueYesNo:    row.ValueYesNo,
		Notes:         row.Notes,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		PeriodName:    row.PeriodName,
		TopicName:     row.TopicName,
		IndicatorName: row.IndicatorName,
		EvaluatorName: row.EvaluatorName,
		EvaluateeName: row.EvaluateeName,
	}
}

// NewResultResponseSlice converts joined rows into DTOs.
func NewResultResponseSlice(rows []repository.ResultRow) []ResultResponse {
	responses := make([]ResultResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewResultResponse(row))
	}

	return responses
}
