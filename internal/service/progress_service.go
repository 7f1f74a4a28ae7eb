package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
)

// ProgressService aggregates per-period workflow progress counts. The cache
// sits in front of the read path only; write paths elsewhere stay
// look-then-act against the store.
type ProgressService interface {
	GetSummary(ctx context.Context, periodID uint) (dto.ProgressSummaryResponse, error)
}

type progressService struct {
	assignments repository.AssignmentRepository
	results     repository.ResultRepository
	refs        repository.ReferenceRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	tracer      trace.Tracer
	logger      zerolog.Logger
}

// NewProgressService builds the progress aggregator. A nil cache disables caching.
func NewProgressService(assignments repository.AssignmentRepository, results repository.ResultRepository, refs repository.ReferenceRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) ProgressService {
	return &progressService{
		assignments: assignments,
		results:     results,
		refs:        refs,
		cache:       cache,
		cacheTTL:    ttl,
		tracer:      otel.Tracer("evaluation-api/progress"),
		logger:      logger.With().Str("component", "progress_service").Logger(),
	}
}

func (s *progressService) GetSummary(ctx context.Context, periodID uint) (dto.ProgressSummaryResponse, error) {
	cacheKey := fmt.Sprintf("progress:period:%d", periodID)
	ctx, span := s.tracer.Start(ctx, "progress.aggregate")
	span.SetAttributes(attribute.String("progress.cache_key", cacheKey))
	defer span.End()

	period, err := s.refs.FindPeriod(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProgressSummaryResponse{}, NotFound("Period")
		}
		span.RecordError(err)
		return dto.ProgressSummaryResponse{}, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var response dto.ProgressSummaryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("progress.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read progress cache")
			span.RecordError(err)
		}
	}

	assignmentTotal, err := s.assignments.Count(ctx, repository.AssignmentFilter{PeriodID: &periodID})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_assignments_failed")
		return dto.ProgressSummaryResponse{}, err
	}

	statusCounts, err := s.results.CountByStatus(ctx, periodID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_results_failed")
		return dto.ProgressSummaryResponse{}, err
	}

	response := buildProgressSummary(period, assignmentTotal, statusCounts)
	span.SetAttributes(
		attribute.Int64("progress.assignments", response.Assignments),
		attribute.Int64("progress.results", response.Results),
	)

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store progress cache")
				span.RecordError(err)
			}
		}
	}

	return response, nil
}

func buildProgressSummary(period models.EvaluationPeriod, assignmentTotal int64, statusCounts []repository.StatusCount) dto.ProgressSummaryResponse {
	counts := make(map[string]int64, len(statusCounts))
	var resultTotal int64
	for _, row := range statusCounts {
		counts[row.Status] = row.Count
		resultTotal += row.Count
	}

	var submittedRate float64
	if resultTotal > 0 {
		submittedRate = float64(counts[models.ResultStatusSubmitted]) / float64(resultTotal) * 100
	}

	return dto.ProgressSummaryResponse{
		PeriodID:      period.ID,
		PeriodCode:    period.Code,
		Assignments:   assignmentTotal,
		Results:       resultTotal,
		StatusCounts:  counts,
		SubmittedRate: submittedRate,
	}
}
