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

// ResultService exposes evaluation-result use cases and the draft/submitted
// lifecycle.
type ResultService interface {
	List(ctx context.Context, payload dto.ResultListRequest) ([]dto.ResultResponse, error)
	Get(ctx context.Context, id uint) (dto.ResultResponse, error)
	Create(ctx context.Context, payload dto.ResultCreateRequest) (dto.ResultResponse, error)
	Update(ctx context.Context, id uint, payload dto.ResultUpdateRequest) (dto.ResultResponse, error)
	Delete(ctx context.Context, id uint) error
}

type resultService struct {
	repo      repository.ResultRepository
	refs      repository.ReferenceRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResultService builds a new result service.
func NewResultService(repo repository.ResultRepository, refs repository.ReferenceRepository, validate *validator.Validate, logger zerolog.Logger) ResultService {
	return &resultService{
		repo:      repo,
		refs:      refs,
		validator: validate,
		logger:    logger.With().Str("component", "result_service").Logger(),
	}
}

func (s *resultService) List(ctx context.Context, payload dto.ResultListRequest) ([]dto.ResultResponse, error) {
	rows, err := s.repo.List(ctx, repository.ResultFilter{
		PeriodID:    payload.PeriodID,
		EvaluatorID: payload.EvaluatorID,
		EvaluateeID: payload.EvaluateeID,
		TopicID:     payload.TopicID,
		IndicatorID: payload.IndicatorID,
		Status:      payload.Status,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewResultResponseSlice(rows), nil
}

func (s *resultService) Get(ctx context.Context, id uint) (dto.ResultResponse, error) {
	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ResultResponse{}, NotFound("Result")
		}

		return dto.ResultResponse{}, err
	}

	return dto.NewResultResponse(row), nil
}

// Create resolves all five references in a fixed order — period, evaluatee,
// evaluator, topic, indicator — and the first absent one wins. The stored
// status is always draft, whatever the payload says.
func (s *resultService) Create(ctx context.Context, payload dto.ResultCreateRequest) (dto.ResultResponse, error) {
	if payload.PeriodID == 0 || payload.EvaluateeID == 0 || payload.EvaluatorID == 0 || payload.TopicID == 0 || payload.IndicatorID == 0 {
		return dto.ResultResponse{}, &ValidationError{Message: "period_id, evaluatee_id, evaluator_id, topic_id, and indicator_id are required"}
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.ResultResponse{}, err
	}

	if _, err := s.refs.FindPeriod(ctx, payload.PeriodID); err != nil {
		return dto.ResultResponse{}, s.refError(err, "Period")
	}
	if _, err := s.refs.FindUser(ctx, payload.EvaluateeID); err != nil {
		return dto.ResultResponse{}, s.refError(err, "Evaluatee")
	}
	if _, err := s.refs.FindUser(ctx, payload.EvaluatorID); err != nil {
		return dto.ResultResponse{}, s.refError(err, "Evaluator")
	}
	if _, err := s.refs.FindTopic(ctx, payload.TopicID); err != nil {
		return dto.ResultResponse{}, s.refError(err, "Topic")
	}
	if _, err := s.refs.FindIndicator(ctx, payload.IndicatorID); err != nil {
		return dto.ResultResponse{}, s.refError(err, "Indicator")
	}

	var notes *string
	if payload.Notes != "" {
		notes = &payload.Notes
	}

	result := models.EvaluationResult{
		PeriodID:    payload.PeriodID,
		EvaluateeID: payload.EvaluateeID,
		EvaluatorID: payload.EvaluatorID,
		TopicID:     payload.TopicID,
		IndicatorID: payload.IndicatorID,
		Score:       payload.Score,
		ValueYesNo:  payload.ValueYesNo,
		Notes:       notes,
		Status:      models.ResultStatusDraft,
	}

	if err := s.repo.Create(ctx, &result); err != nil {
		return dto.ResultResponse{}, err
	}

	s.logger.Info().
		Uint("result_id", result.ID).
		Uint("period_id", result.PeriodID).
		Uint("indicator_id", result.IndicatorID).
		Msg("result created")

	return dto.ResultResponse{
		ID:          result.ID,
		PeriodID:    result.PeriodID,
		EvaluateeID: result.EvaluateeID,
		EvaluatorID: result.EvaluatorID,
		TopicID:     result.TopicID,
		IndicatorID: result.IndicatorID,
		Score:       result.Score,
		ValueYesNo:  result.ValueYesNo,
		Notes:       result.Notes,
		Status:      result.Status,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// Update accepts the mutable subset only: score, value_yes_no, notes and
// status. Identity and foreign-key fields never change after creation.
func (s *resultService) Update(ctx context.Context, id uint, payload dto.ResultUpdateRequest) (dto.ResultResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ResultResponse{}, NotFound("Result")
		}

		return dto.ResultResponse{}, err
	}

	fields := map[string]interface{}{}
	if payload.Score.Set {
		fields["score"] = payload.Score.Value
	}
	if payload.ValueYesNo.Set {
		fields["value_yes_no"] = payload.ValueYesNo.Value
	}
	if payload.Notes.Set {
		if payload.Notes.Value != nil && *payload.Notes.Value == "" {
			fields["notes"] = nil
		} else {
			fields["notes"] = payload.Notes.Value
		}
	}
	if payload.Status != nil {
		fields["status"] = *payload.Status
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return dto.ResultResponse{}, err
	}

	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		return dto.ResultResponse{}, err
	}

	s.logger.Info().Uint("result_id", id).Msg("result updated")

	return dto.NewResultResponse(row), nil
}

func (s *resultService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Result")
		}
		return err
	}

	s.logger.Info().Uint("result_id", id).Msg("result deleted")
	return nil
}

func (s *resultService) refError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(entity)
	}
	return err
}
