package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// ResultFilter describes the optional list filters.
type ResultFilter struct {
	PeriodID    *uint
	EvaluatorID *uint
	EvaluateeID *uint
	TopicID     *uint
	IndicatorID *uint
	Status      string
}

// ResultRow is an evaluation result joined with the display names of all
// five referenced entities.
type ResultRow struct {
	ID            uint      `json:"id"`
	PeriodID      uint      `json:"period_id"`
	EvaluateeID   uint      `json:"evaluatee_id"`
	EvaluatorID   uint      `json:"evaluator_id"`
	TopicID       uint      `json:"topic_id"`
	IndicatorID   uint      `json:"indicator_id"`
	Score         *float64  `json:"score"`
	ValueYesNo    *bool     `json:"value_yes_no"`
	Notes         *string   `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PeriodName    string    `json:"period_name"`
	TopicName     string    `json:"topic_name"`
	IndicatorName string    `json:"indicator_name"`
	EvaluatorName string    `json:"evaluator_name"`
	EvaluateeName string    `json:"evaluatee_name"`
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status string
	Count  int64
}

// ResultRepository defines persistence operations for evaluation results.
type ResultRepository interface {
	List(ctx context.Context, filter ResultFilter) ([]ResultRow, error)
	GetRow(ctx context.Context, id uint) (ResultRow, error)
	GetByID(ctx context.Context, id uint) (models.EvaluationResult, error)
	CountByStatus(ctx context.Context, periodID uint) ([]StatusCount, error)
	Create(ctx context.Context, result *models.EvaluationResult) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository instantiates a GORM-backed repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("evaluation_results AS er").
		Joins("JOIN evaluation_periods AS ep ON ep.id = er.period_id").
		Joins("JOIN evaluation_topics AS et ON et.id = er.topic_id").
		Joins("JOIN indicators AS ind ON ind.id = er.indicator_id").
		Joins("JOIN users AS eva ON eva.id = er.evaluator_id").
		Joins("JOIN users AS ee ON ee.id = er.evaluatee_id").
		Select("er.id, er.period_id, er.evaluatee_id, er.evaluator_id, er.topic_id, er.indicator_id, " +
			"er.score, er.value_yes_no, er.notes, er.status, er.created_at, er.updated_at, " +
			"ep.name_th AS period_name, et.title_th AS topic_name, ind.name_th AS indicator_name, " +
			"eva.name_th AS evaluator_name, ee.name_th AS evaluatee_name")
}

func (r *resultRepository) List(ctx context.Context, filter ResultFilter) ([]ResultRow, error) {
	query := r.joined(ctx)

	if filter.PeriodID != nil {
		query = query.Where("er.period_id = ?", *filter.PeriodID)
	}
	if filter.EvaluatorID != nil {
		query = query.Where("er.evaluator_id = ?", *filter.EvaluatorID)
	}
	if filter.EvaluateeID != nil {
		query = query.Where("er.evaluatee_id = ?", *filter.EvaluateeID)
	}
	if filter.TopicID != nil {
		query = query.Where("er.topic_id = ?", *filter.TopicID)
	}
	if filter.IndicatorID != nil {
		query = query.Where("er.indicator_id = ?", *filter.IndicatorID)
	}
	if filter.Status != "" {
		query = query.Where("er.status = ?", filter.Status)
	}

	var rows []ResultRow
	if err := query.Order("er.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *resultRepository) GetRow(ctx context.Context, id uint) (ResultRow, error) {
	var row ResultRow
	result := r.joined(ctx).Where("er.id = ?", id).Scan(&row)
	if result.Error != nil {
		return ResultRow{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ResultRow{}, gorm.ErrRecordNotFound
	}

	return row, nil
}

func (r *resultRepository) GetByID(ctx context.Context, id uint) (models.EvaluationResult, error) {
	var result models.EvaluationResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return models.EvaluationResult{}, err
	}

	return result, nil
}

func (r *resultRepository) CountByStatus(ctx context.Context, periodID uint) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.EvaluationResult{}).
		Select("status, COUNT(*) AS count").
		Where("period_id = ?", periodID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *resultRepository) Create(ctx context.Context, result *models.EvaluationResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// UpdateFields applies a partial update; map values may be explicit nil to
// clear nullable columns.
func (r *resultRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&models.EvaluationResult{}).Where("id = ?", id).Updates(fields).Error
}

func (r *resultRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EvaluationResult{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
