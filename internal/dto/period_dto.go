package dto

import (
	"time"

	"github.com/okoak/evaluation-api/internal/models"
)

// PeriodCreateRequest describes the payload for creating an evaluation period.
type PeriodCreateRequest struct {
	Code         string `json:"code" validate:"required"`
	NameTH       string `json:"name_th" validate:"required"`
	BuddhistYear int    `json:"buddhist_year" validate:"required"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsActive     bool   `json:"is_active"`
}

// PeriodUpdateRequest describes a partial update; absent fields stay untouched.
type PeriodUpdateRequest struct {
	Code         *string `json:"code" validate:"omitempty,min=1"`
	NameTH       *string `json:"name_th" validate:"omitempty,min=1"`
	BuddhistYear *int    `json:"buddhist_year"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive     *bool   `json:"is_active"`
}

// PeriodResponse is the serialized representation returned to API clients.
type PeriodResponse struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	NameTH       string    `json:"name_th"`
	BuddhistYear int       `json:"buddhist_year"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPeriodResponse converts a model into a DTO.
func NewPeriodResponse(model models.EvaluationPeriod) PeriodResponse {
	return PeriodResponse{
		ID:           model.ID,
		Code:         model.Code,
		NameTH:       model.NameTH,
		BuddhistYear: model.BuddhistYear,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
	}
}

// NewPeriodResponseSlice converts a slice of models into DTOs.
func NewPeriodResponseSlice(periods []models.EvaluationPeriod) []PeriodResponse {
	responses := make([]PeriodResponse, 0, len(periods))
	for _, period := range periods {
		responses = append(responses, NewPeriodResponse(period))
	}

	return responses
}
