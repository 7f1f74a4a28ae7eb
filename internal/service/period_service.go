package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
)

// PeriodService exposes evaluation-period use cases.
type PeriodService interface {
	List(ctx context.Context, isActive *bool) ([]dto.PeriodResponse, error)
	Get(ctx context.Context, id uint) (dto.PeriodResponse, error)
	Create(ctx context.Context, payload dto.PeriodCreateRequest) (dto.PeriodResponse, error)
	Update(ctx context.Context, id uint, payload dto.PeriodUpdateRequest) (dto.PeriodResponse, error)
	Delete(ctx context.Context, id uint) error
}

type periodService struct {
	repo      repository.PeriodRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPeriodService builds a new period service.
func NewPeriodService(repo repository.PeriodRepository, validate *validator.Validate, logger zerolog.Logger) PeriodService {
	return &periodService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "period_service").Logger(),
	}
}

func (s *periodService) List(ctx context.Context, isActive *bool) ([]dto.PeriodResponse, error) {
	periods, err := s.repo.List(ctx, isActive)
	if err != nil {
		return nil, err
	}

	return dto.NewPeriodResponseSlice(periods), nil
}

func (s *periodService) Get(ctx context.Context, id uint) (dto.PeriodResponse, error) {
	period, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PeriodResponse{}, NotFound("Period")
		}

		return dto.PeriodResponse{}, err
	}

	return dto.NewPeriodResponse(period), nil
}

func (s *periodService) Create(ctx context.Context, payload dto.PeriodCreateRequest) (dto.PeriodResponse, error) {
	if payload.Code == "" || payload.NameTH == "" || payload.BuddhistYear == 0 || payload.StartDate == "" || payload.EndDate == "" {
		return dto.PeriodResponse{}, &ValidationError{Message: "code, name_th, buddhist_year, start_date, and end_date are required"}
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.PeriodResponse{}, err
	}

	if err := s.ensureCodeFree(ctx, payload.Code); err != nil {
		return dto.PeriodResponse{}, err
	}

	period := models.EvaluationPeriod{
		Code:         payload.Code,
		NameTH:       payload.NameTH,
		BuddhistYear: payload.BuddhistYear,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		IsActive:     payload.IsActive,
	}

	if err := s.repo.Create(ctx, &period); err != nil {
		return dto.PeriodResponse{}, err
	}

	s.logger.Info().Uint("period_id", period.ID).Str("code", period.Code).Msg("period created")

	return dto.NewPeriodResponse(period), nil
}

func (s *periodService) Update(ctx context.Context, id uint, payload dto.PeriodUpdateRequest) (dto.PeriodResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.PeriodResponse{}, err
	}

	period, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PeriodResponse{}, NotFound("Period")
		}

		return dto.PeriodResponse{}, err
	}

	// Uniqueness is only re-checked when the code actually changes, so
	// updating a period's code to its own current value never conflicts.
	if payload.Code != nil && *payload.Code != period.Code {
		if err := s.ensureCodeFree(ctx, *payload.Code); err != nil {
			return dto.PeriodResponse{}, err
		}
	}

	fields := map[string]interface{}{}
	if payload.Code != nil {
		fields["code"] = *payload.Code
	}
	if payload.NameTH != nil {
		fields["name_th"] = *payload.NameTH
	}
	if payload.BuddhistYear != nil {
		fields["buddhist_year"] = *payload.BuddhistYear
	}
	if payload.StartDate != nil {
		fields["start_date"] = *payload.StartDate
	}
	if payload.EndDate != nil {
		fields["end_date"] = *payload.EndDate
	}
	if payload.IsActive != nil {
		fields["is_active"] = *payload.IsActive
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return dto.PeriodResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.PeriodResponse{}, err
	}

	s.logger.Info().Uint("period_id", id).Msg("period updated")

	return dto.NewPeriodResponse(updated), nil
}

func (s *periodService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Period")
		}
		return err
	}

	s.logger.Info().Uint("period_id", id).Msg("period deleted")
	return nil
}

func (s *periodService) ensureCodeFree(ctx context.Context, code string) error {
	_, err := s.repo.FindByCode(ctx, code)
	if err == nil {
		return &ConflictError{Message: "Code already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
