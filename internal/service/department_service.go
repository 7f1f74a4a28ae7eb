package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/repository"
)

// DepartmentService exposes the read-only department views.
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id uint) (dto.DepartmentResponse, error)
}

type departmentService struct {
	repo   repository.DepartmentRepository
	logger zerolog.Logger
}

// NewDepartmentService builds a new department service.
func NewDepartmentService(repo repository.DepartmentRepository, logger zerolog.Logger) DepartmentService {
	return &departmentService{
		repo:   repo,
		logger: logger.With().Str("component", "department_service").Logger(),
	}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewDepartmentResponseSlice(rows), nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (dto.DepartmentResponse, error) {
	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DepartmentResponse{}, NotFound("Department")
		}

		return dto.DepartmentResponse{}, err
	}

	fields, err := s.repo.ListFields(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}

	response := dto.NewDepartmentResponse(row)
	response.VocationalFields = dto.NewVocationalFieldResponseSlice(fields)

	return response, nil
}
