package dto

import (
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
)

// VocationalFieldResponse is a field of study associated with a department.
type VocationalFieldResponse struct {
	Code   string `json:"code"`
	NameTH string `json:"name_th"`
}

// DepartmentResponse is the serialized representation with joined
// category/org-group names. VocationalFields is populated on single fetch.
type DepartmentResponse struct {
	ID               uint                      `json:"id"`
	Code             string                    `json:"code"`
	NameTH           string                    `json:"name_th"`
	CategoryID       uint                      `json:"category_id"`
	OrgGroupID       uint                      `json:"org_group_id"`
	CategoryName     string                    `json:"category_name"`
	OrgGroupName     string                    `json:"org_group_name"`
	VocationalFields []VocationalFieldResponse `json:"vocational_fields,omitempty"`
}

// NewDepartmentResponse converts a joined repository row into a DTO.
func NewDepartmentResponse(row repository.DepartmentRow) DepartmentResponse {
	return DepartmentResponse{
		ID:           row.ID,
		Code:         row.Code,
		NameTH:       row.NameTH,
		CategoryID:   row.CategoryID,
		OrgGroupID:   row.OrgGroupID,
		CategoryName: row.CategoryName,
		OrgGroupName: row.OrgGroupName,
	}
}

// NewDepartmentResponseSlice converts joined rows into DTOs.
func NewDepartmentResponseSlice(rows []repository.DepartmentRow) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NewDepartmentResponse(row))
	}

	return responses
}

// NewVocationalFieldResponseSlice converts field models into DTOs.
func NewVocationalFieldResponseSlice(fields []models.VocationalField) []VocationalFieldResponse {
	responses := make([]VocationalFieldResponse, 0, len(fields))
	for _, field := range fields {
		responses = append(responses, VocationalFieldResponse{
			Code:   field.Code,
			NameTH: field.NameTH,
		})
	}

	return responses
}
