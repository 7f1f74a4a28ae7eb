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

// TopicService exposes evaluation-topic use cases.
type TopicService interface {
	List(ctx context.Context) ([]dto.TopicResponse, error)
	Get(ctx context.Context, id uint) (dto.TopicResponse, error)
	Create(ctx context.Context, payload dto.TopicCreateRequest) (dto.TopicResponse, error)
	Update(ctx context.Context, id uint, payload dto.TopicUpdateRequest) (dto.TopicResponse, error)
	Delete(ctx context.Context, id uint) error
}

type topicService struct {
	repo      repository.TopicRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTopicService builds a new topic service.
func NewTopicService(repo repository.TopicRepository, validate *validator.Validate, logger zerolog.Logger) TopicService {
	return &topicService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "topic_service").Logger(),
	}
}

func (s *topicService) List(ctx context.Context) ([]dto.TopicResponse, error) {
	topics, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewTopicResponseSlice(topics), nil
}

func (s *topicService) Get(ctx context.Context, id uint) (dto.TopicResponse, error) {
	topic, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TopicResponse{}, NotFound("Topic")
		}

		return dto.TopicResponse{}, err
	}

	return dto.NewTopicResponse(topic), nil
}

func (s *topicService) Create(ctx context.Context, payload dto.TopicCreateRequest) (dto.TopicResponse, error) {
	if payload.Code == "" || payload.TitleTH == "" {
		return dto.TopicResponse{}, &ValidationError{Message: "code and title_th are required"}
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.TopicResponse{}, err
	}

	if err := s.ensureCodeFree(ctx, payload.Code); err != nil {
		return dto.TopicResponse{}, err
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	topic := models.EvaluationTopic{
		Code:        payload.Code,
		TitleTH:     payload.TitleTH,
		Description: payload.Description,
		Weight:      payload.Weight,
		Active:      active,
	}

	if err := s.repo.Create(ctx, &topic); err != nil {
		return dto.TopicResponse{}, err
	}

	s.logger.Info().Uint("topic_id", topic.ID).Str("code", topic.Code).Msg("topic created")

	return dto.NewTopicResponse(topic), nil
}

func (s *topicService) Update(ctx context.Context, id uint, payload dto.TopicUpdateRequest) (dto.TopicResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TopicResponse{}, err
	}

	topic, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TopicResponse{}, NotFound("Topic")
		}

		return dto.TopicResponse{}, err
	}

	if payload.Code != nil && *payload.Code != topic.Code {
		if err := s.ensureCodeFree(ctx, *payload.Code); err != nil {
			return dto.TopicResponse{}, err
		}
	}

	fields := map[string]interface{}{}
	if payload.Code != nil {
		fields["code"] = *payload.Code
	}
	if payload.TitleTH != nil {
		fields["title_th"] = *payload.TitleTH
	}
	if payload.Description.Set {
		fields["description"] = payload.Description.Value
	}
	if payload.Weight != nil {
		fields["weight"] = *payload.Weight
	}
	if payload.Active != nil {
		fields["active"] = *payload.Active
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return dto.TopicResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.TopicResponse{}, err
	}

	s.logger.Info().Uint("topic_id", id).Msg("topic updated")

	return dto.NewTopicResponse(updated), nil
}

func (s *topicService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Topic")
		}
		return err
	}

	s.logger.Info().Uint("topic_id", id).Msg("topic deleted")
	return nil
}

func (s *topicService) ensureCodeFree(ctx context.Context, code string) error {
	_, err := s.repo.FindByCode(ctx, code)
	if err == nil {
		return &ConflictError{Message: "Code already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
