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

// IndicatorService exposes indicator use cases, including the
// evidence-type mapping maintained alongside each indicator.
type IndicatorService interface {
	List(ctx context.Context, filter repository.IndicatorFilter) ([]dto.IndicatorResponse, error)
	Get(ctx context.Context, id uint) (dto.IndicatorResponse, error)
	Create(ctx context.Context, payload dto.IndicatorCreateRequest) (dto.IndicatorResponse, error)
	Update(ctx context.Context, id uint, payload dto.IndicatorUpdateRequest) (dto.IndicatorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type indicatorService struct {
	repo      repository.IndicatorRepository
	refs      repository.ReferenceRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewIndicatorService builds a new indicator service.
func NewIndicatorService(repo repository.IndicatorRepository, refs repository.ReferenceRepository, validate *validator.Validate, logger zerolog.Logger) IndicatorService {
	return &indicatorService{
		repo:      repo,
		refs:      refs,
		validator: validate,
		logger:    logger.With().Str("component", "indicator_service").Logger(),
	}
}

func (s *indicatorService) List(ctx context.Context, filter repository.IndicatorFilter) ([]dto.IndicatorResponse, error) {
	indicators, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewIndicatorResponseSlice(indicators), nil
}

func (s *indicatorService) Get(ctx context.Context, id uint) (dto.IndicatorResponse, error) {
	indicator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IndicatorResponse{}, NotFound("Indicator")
		}

		return dto.IndicatorResponse{}, err
	}

	evidenceTypes, err := s.repo.ListEvidenceTypes(ctx, id)
	if err != nil {
		return dto.IndicatorResponse{}, err
	}

	response := dto.NewIndicatorResponse(indicator)
	response.EvidenceTypes = dto.NewEvidenceTypeResponseSlice(evidenceTypes)

	return response, nil
}

func (s *indicatorService) Create(ctx context.Context, payload dto.IndicatorCreateRequest) (dto.IndicatorResponse, error) {
	if payload.TopicID == 0 || payload.Code == "" || payload.NameTH == "" {
		return dto.IndicatorResponse{}, &ValidationError{Message: "topic_id, code, and name_th are required"}
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.IndicatorResponse{}, err
	}

	if _, err := s.refs.FindTopic(ctx, payload.TopicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IndicatorResponse{}, NotFound("Topic")
		}

		return dto.IndicatorResponse{}, err
	}

	if err := s.ensureCodeFree(ctx, payload.Code); err != nil {
		return dto.IndicatorResponse{}, err
	}

	indicator := models.Indicator{
		TopicID:     payload.TopicID,
		Code:        payload.Code,
		NameTH:      payload.NameTH,
		Description: payload.Description,
		Type:        models.IndicatorTypeScore1To4,
		Weight:      1.0,
		MinScore:    1,
		MaxScore:    4,
		Active:      true,
	}
	if payload.Type != "" {
		indicator.Type = payload.Type
	}
	if payload.Weight != nil {
		indicator.Weight = *payload.Weight
	}
	if payload.MinScore != nil {
		indicator.MinScore = *payload.MinScore
	}
	if payload.MaxScore != nil {
		indicator.MaxScore = *payload.MaxScore
	}
	if payload.Active != nil {
		indicator.Active = *payload.Active
	}

	if indicator.MinScore > indicator.MaxScore {
		return dto.IndicatorResponse{}, &ValidationError{Message: "min_score must not exceed max_score"}
	}

	if err := s.repo.Create(ctx, &indicator, payload.EvidenceTypeIDs); err != nil {
		return dto.IndicatorResponse{}, err
	}

	s.logger.Info().Uint("indicator_id", indicator.ID).Str("code", indicator.Code).Msg("indicator created")

	evidenceTypes, err := s.repo.ListEvidenceTypes(ctx, indicator.ID)
	if err != nil {
		return dto.IndicatorResponse{}, err
	}

	response := dto.NewIndicatorResponse(indicator)
	response.EvidenceTypes = dto.NewEvidenceTypeResponseSlice(evidenceTypes)

	return response, nil
}

func (s *indicatorService) Update(ctx context.Context, id uint, payload dto.IndicatorUpdateRequest) (dto.IndicatorResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.IndicatorResponse{}, err
	}

	indicator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IndicatorResponse{}, NotFound("Indicator")
		}

		return dto.IndicatorResponse{}, err
	}

	if payload.Code != nil && *payload.Code != indicator.Code {
		if err := s.ensureCodeFree(ctx, *payload.Code); err != nil {
			return dto.IndicatorResponse{}, err
		}
	}

	fields := map[string]interface{}{}
	if payload.TopicID != nil {
		fields["topic_id"] = *payload.TopicID
	}
	if payload.Code != nil {
		fields["code"] = *payload.Code
	}
	if payload.NameTH != nil {
		fields["name_th"] = *payload.NameTH
	}
	if payload.Description.Set {
		fields["description"] = payload.Description.Value
	}
	if payload.Type != nil {
		fields["type"] = *payload.Type
	}
	if payload.Weight != nil {
		fields["weight"] = *payload.Weight
	}
	if payload.MinScore != nil {
		fields["min_score"] = *payload.MinScore
	}
	if payload.MaxScore != nil {
		fields["max_score"] = *payload.MaxScore
	}
	if payload.Active != nil {
		fields["active"] = *payload.Active
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return dto.IndicatorResponse{}, err
	}

	// When evidence ids are present the whole mapping set is replaced;
	// explicit null behaves like an empty list.
	if payload.EvidenceTypeIDs.Set {
		var evidenceTypeIDs []uint
		if payload.EvidenceTypeIDs.Value != nil {
			evidenceTypeIDs = *payload.EvidenceTypeIDs.Value
		}
		if err := s.repo.ReplaceEvidence(ctx, id, evidenceTypeIDs); err != nil {
			return dto.IndicatorResponse{}, err
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.IndicatorResponse{}, err
	}

	s.logger.Info().Uint("indicator_id", id).Msg("indicator updated")

	evidenceTypes, err := s.repo.ListEvidenceTypes(ctx, id)
	if err != nil {
		return dto.IndicatorResponse{}, err
	}

	response := dto.NewIndicatorResponse(updated)
	response.EvidenceTypes = dto.NewEvidenceTypeResponseSlice(evidenceTypes)

	return response, nil
}

func (s *indicatorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Indicator")
		}
		return err
	}

	s.logger.Info().Uint("indicator_id", id).Msg("indicator deleted")
	return nil
}

func (s *indicatorService) ensureCodeFree(ctx context.Context, code string) error {
	_, err := s.repo.FindByCode(ctx, code)
	if err == nil {
		return &ConflictError{Message: "Code already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
