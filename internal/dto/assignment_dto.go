package dto

import (
	"time"

	"github.com/okoak/evaluation-api/internal/repository"
)

// AssignmentCreateRequest describes the payload for pairing an evaluator
// with an evaluatee inside a period.
type AssignmentCreateRequest struct {
	PeriodID    uint  `json:"period_id" validate:"required"`
	EvaluatorID uint  `json:"evaluator_id" validate:"required"`
	EvaluateeID uint  `json:"evaluatee_id" validate:"required"`
	DeptID      *uint `json:"dept_id"`
}

// AssignmentUpdateRequest describes a partial update. DeptID is tri-state:
// absent leaves it alone, explicit null clears it.
type AssignmentUpdateRequest struct {
	PeriodID    *uint          `json:"period_id"`
	EvaluatorID *uint          `json:"evaluator_id"`
	EvaluateeID *uint          `json:"evaluatee_id"`
	DeptID      Optional[uint] `json:"dept_id"`
}

// AssignmentListRequest carries the optional list filters.
type AssignmentListRequest struct {
	PeriodID    *uint
	EvaluatorID *uint
	EvaluateeID *uint
}

// AssignmentResponse is the serialized representation with denormalized
// evaluator/evaluatee display names.
type AssignmentResponse struct {
	ID            uint      `json:"id"`
	PeriodID      uint      `json:"period_id"`
	EvaluatorID   uint      `json:"evaluator_id"`
	EvaluateeID   uint      `json:"evaluatee_id"`
	DeptID        *uint     `json:"dept_id"`
	CreatedAt     time.Time `json:"created_at"`
	EvaluatorName string    `json:"evaluator_name"`
	EvaluateeName string    `json:"evaluatee_name"`
}

// NewAssignmentResponse converts a joined repository row into a DTO.
func NewAssignmentResponse(row repository.AssignmentRow) AssignmentResponse {
	return AssignmentResponse{
		ID:            row.ID,
		PeriodID:      row.PeriodID,
		EvaluatorID:   row.EvaluatorID,
		EvaluateeID:   row.EvaluateeID,
		DeptID:        row.DeptID,
		CreatedAt:     row.CreatedAt,
		EvaluatorName: row.EvaluatorName,
		EvaluateeName: row.EvaluateeName,
	}
}

// NewAssignmentResponseSlice converts joined rows into DTOs.
func NewAssignmentResponseSlice(rows []repository.AssignmentRow) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewAssignmentResponse(row))
	}

	return responses
}
