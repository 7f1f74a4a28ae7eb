package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// AssignmentFilter describes the optional list filters.
type AssignmentFilter struct {
	PeriodID    *uint
	EvaluatorID *uint
	EvaluateeID *uint
}

// AssignmentRow is an assignment joined with evaluator/evaluatee display names.
type AssignmentRow struct {
	ID            uint      `json:"id"`
	PeriodID      uint      `json:"period_id"`
	EvaluatorID   uint      `json:"evaluator_id"`
	EvaluateeID   uint      `json:"evaluatee_id"`
	DeptID        *uint     `json:"dept_id"`
	CreatedAt     time.Time `json:"created_at"`
	EvaluatorName string    `json:"evaluator_name"`
	EvaluateeName string    `json:"evaluatee_name"`
}

// AssignmentRepository defines persistence operations for assignments.
type AssignmentRepository interface {
	List(ctx context.Context, filter AssignmentFilter) ([]AssignmentRow, error)
	GetRow(ctx context.Context, id uint) (AssignmentRow, error)
	GetByID(ctx context.Context, id uint) (models.Assignment, error)
	FindByTriple(ctx context.Context, periodID, evaluatorID, evaluateeID uint) (models.Assignment, error)
	Count(ctx context.Context, filter AssignmentFilter) (int64, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("assignments AS a").
		Joins("JOIN users AS eva ON eva.id = a.evaluator_id").
		Joins("JOIN users AS ee ON ee.id = a.evaluatee_id").
		Select("a.id, a.period_id, a.evaluator_id, a.evaluatee_id, a.dept_id, a.created_at, " +
			"eva.name_th AS evaluator_name, ee.name_th AS evaluatee_name")
}

func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]AssignmentRow, error) {
	query := r.joined(ctx)

	if filter.PeriodID != nil {
		query = query.Where("a.period_id = ?", *filter.PeriodID)
	}
	if filter.EvaluatorID != nil {
		query = query.Where("a.evaluator_id = ?", *filter.EvaluatorID)
	}
	if filter.EvaluateeID != nil {
		query = query.Where("a.evaluatee_id = ?", *filter.EvaluateeID)
	}

	var rows []AssignmentRow
	if err := query.Order("a.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *assignmentRepository) GetRow(ctx context.Context, id uint) (AssignmentRow, error) {
	var row AssignmentRow
	result := r.joined(ctx).Where("a.id = ?", id).Scan(&row)
	if result.Error != nil {
		return AssignmentRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return AssignmentRow{}, gorm.ErrRecordNotFound
	}

	return row, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) FindByTriple(ctx context.Context, periodID, evaluatorID, evaluateeID uint) (models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Where("period_id = ? AND evaluator_id = ? AND evaluatee_id = ?", periodID, evaluatorID, evaluateeID).
		First(&assignment).Error
	if err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Count(ctx context.Context, filter AssignmentFilter) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Assignment{})

	if filter.PeriodID != nil {
		query = query.Where("period_id = ?", *filter.PeriodID)
	}
	if filter.EvaluatorID != nil {
		query = query.Where("evaluator_id = ?", *filter.EvaluatorID)
	}
	if filter.EvaluateeID != nil {
		query = query.Where("evaluatee_id = ?", *filter.EvaluateeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// UpdateFields applies a partial update; map values may be explicit nil to
// clear nullable columns.
func (r *assignmentRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&models.Assignment{}).Where("id = ?", id).Updates(fields).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
