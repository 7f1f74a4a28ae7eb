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

// AssignmentService exposes evaluator-to-evaluatee pairing use cases.
type AssignmentService interface {
	List(ctx context.Context, payload dto.AssignmentListRequest) ([]dto.AssignmentResponse, error)
	Get(ctx context.Context, id uint) (dto.AssignmentResponse, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	refs      repository.ReferenceRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, refs repository.ReferenceRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		refs:      refs,
		validator: validate,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) List(ctx context.Context, payload dto.AssignmentListRequest) ([]dto.AssignmentResponse, error) {
	rows, err := s.repo.List(ctx, repository.AssignmentFilter{
		PeriodID:    payload.PeriodID,
		EvaluatorID: payload.EvaluatorID,
		EvaluateeID: payload.EvaluateeID,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentResponseSlice(rows), nil
}

func (s *assignmentService) Get(ctx context.Context, id uint) (dto.AssignmentResponse, error) {
	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, NotFound("Assignment")
		}

		return dto.AssignmentResponse{}, err
	}

	return dto.NewAssignmentResponse(row), nil
}

// Create resolves every foreign key through the reference store before
// inserting: period, then evaluator (must hold the evaluator role), then
// evaluatee (must hold the evaluatee role), then the optional department,
// then the uniqueness of the (period, evaluator, evaluatee) triple. The
// first failed check wins.
func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if payload.PeriodID == 0 || payload.EvaluatorID == 0 || payload.EvaluateeID == 0 {
		return dto.AssignmentResponse{}, &ValidationError{Message: "period_id, evaluator_id, and evaluatee_id are required"}
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	if _, err := s.refs.FindPeriod(ctx, payload.PeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, NotFound("Period")
		}

		return dto.AssignmentResponse{}, err
	}

	evaluator, err := s.refs.FindUser(ctx, payload.EvaluatorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AssignmentResponse{}, err
	}
	if err != nil || evaluator.Role != models.RoleEvaluator {
		return dto.AssignmentResponse{}, &NotFoundError{Message: "Evaluator user not found or not an evaluator"}
	}

	evaluatee, err := s.refs.FindUser(ctx, payload.EvaluateeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AssignmentResponse{}, err
	}
	if err != nil || evaluatee.Role != models.RoleEvaluatee {
		return dto.AssignmentResponse{}, &NotFoundError{Message: "Evaluatee user not found or not an evaluatee"}
	}

	if payload.DeptID != nil {
		if _, err := s.refs.FindDepartment(ctx, *payload.DeptID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.AssignmentResponse{}, NotFound("Department")
			}

			return dto.AssignmentResponse{}, err
		}
	}

	// Look-then-act: the pre-check is the user-facing guard, not a
	// transactional one. Concurrent identical requests can both pass it.
	_, err = s.repo.FindByTriple(ctx, payload.PeriodID, payload.EvaluatorID, payload.EvaluateeID)
	if err == nil {
		return dto.AssignmentResponse{}, &ConflictError{Message: "Assignment already exists for this evaluator-evaluatee-period"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AssignmentResponse{}, err
	}

	assignment := models.Assignment{
		PeriodID:    payload.PeriodID,
		EvaluatorID: payload.EvaluatorID,
		EvaluateeID: payload.EvaluateeID,
		DeptID:      payload.DeptID,
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Uint("period_id", assignment.PeriodID).
		Uint("evaluator_id", assignment.EvaluatorID).
		Uint("evaluatee_id", assignment.EvaluateeID).
		Msg("assignment created")

	return dto.AssignmentResponse{
		ID:            assignment.ID,
		PeriodID:      assignment.PeriodID,
		EvaluatorID:   assignment.EvaluatorID,
		EvaluateeID:   assignment.EvaluateeID,
		DeptID:        assignment.DeptID,
		CreatedAt:     assignment.CreatedAt,
		EvaluatorName: evaluator.NameTH,
		EvaluateeName: evaluatee.NameTH,
	}, nil
}

// Update applies only the supplied fields; an explicit null dept_id clears
// the department scope. Foreign keys are not re-validated on update.
func (s *assignmentService) Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, NotFound("Assignment")
		}

		return dto.AssignmentResponse{}, err
	}

	fields := map[string]interface{}{}
	if payload.PeriodID != nil {
		fields["period_id"] = *payload.PeriodID
	}
	if payload.EvaluatorID != nil {
		fields["evaluator_id"] = *payload.EvaluatorID
	}
	if payload.EvaluateeID != nil {
		fields["evaluatee_id"] = *payload.EvaluateeID
	}
	if payload.DeptID.Set {
		fields["dept_id"] = payload.DeptID.Value
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return dto.AssignmentResponse{}, err
	}

	row, err := s.repo.GetRow(ctx, id)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", id).Msg("assignment updated")

	return dto.NewAssignmentResponse(row), nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Assignment")
		}
		return err
	}

	s.logger.Info().Uint("assignment_id", id).Msg("assignment deleted")
	return nil
}
