package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// PeriodRepository defines persistence operations for evaluation periods.
type PeriodRepository interface {
	List(ctx context.Context, isActive *bool) ([]models.EvaluationPeriod, error)
	GetByID(ctx context.Context, id uint) (models.EvaluationPeriod, error)
	FindByCode(ctx context.Context, code string) (models.EvaluationPeriod, error)
	Create(ctx context.Context, period *models.EvaluationPeriod) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository instantiates a GORM-backed repository.
func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) List(ctx context.Context, isActive *bool) ([]models.EvaluationPeriod, error) {
	query := r.db.WithContext(ctx)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var periods []models.EvaluationPeriod
	if err := query.Order("id DESC").Find(&periods).Error; err != nil {
		return nil, err
	}

	return periods, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id uint) (models.EvaluationPeriod, error) {
	var period models.EvaluationPeriod
	if err := r.db.WithContext(ctx).First(&period, id).Error; err != nil {
		return models.EvaluationPeriod{}, err
	}

	return period, nil
}

func (r *periodRepository) FindByCode(ctx context.Context, code string) (models.EvaluationPeriod, error) {
	var period models.EvaluationPeriod
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&period).Error; err != nil {
		return models.EvaluationPeriod{}, err
	}

	return period, nil
}

func (r *periodRepository) Create(ctx context.Context, period *models.EvaluationPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *periodRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&models.EvaluationPeriod{}).Where("id = ?", id).Updates(fields).Error
}

func (r *periodRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EvaluationPeriod{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
