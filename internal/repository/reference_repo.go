package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// ReferenceRepository resolves foreign keys before mutations. Lookups are
// read-only; absence surfaces as gorm.ErrRecordNotFound, which the calling
// service converts into a domain error.
type ReferenceRepository interface {
	FindUser(ctx context.Context, id uint) (models.User, error)
	FindPeriod(ctx context.Context, id uint) (models.EvaluationPeriod, error)
	FindTopic(ctx context.Context, id uint) (models.EvaluationTopic, error)
	FindIndicator(ctx context.Context, id uint) (models.Indicator, error)
	FindDepartment(ctx context.Context, id uint) (models.Department, error)
}

type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository instantiates a GORM-backed reference store.
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) FindUser(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *referenceRepository) FindPeriod(ctx context.Context, id uint) (models.EvaluationPeriod, error) {
	var period models.EvaluationPeriod
	if err := r.db.WithContext(ctx).First(&period, id).Error; err != nil {
		return models.EvaluationPeriod{}, err
	}

	return period, nil
}

func (r *referenceRepository) FindTopic(ctx context.Context, id uint) (models.EvaluationTopic, error) {
	var topic models.EvaluationTopic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return models.EvaluationTopic{}, err
	}

	return topic, nil
}

func (r *referenceRepository) FindIndicator(ctx context.Context, id uint) (models.Indicator, error) {
	var indicator models.Indicator
	if err := r.db.WithContext(ctx).First(&indicator, id).Error; err != nil {
		return models.Indicator{}, err
	}

	return indicator, nil
}

func (r *referenceRepository) FindDepartment(ctx context.Context, id uint) (models.Department, error) {
	var department models.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return models.Department{}, err
	}

	return department, nil
}
