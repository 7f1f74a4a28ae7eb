package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// TopicRepository defines persistence operations for evaluation topics.
type TopicRepository interface {
	List(ctx context.Context) ([]models.EvaluationTopic, error)
	GetByID(ctx context.Context, id uint) (models.EvaluationTopic, error)
	FindByCode(ctx context.Context, code string) (models.EvaluationTopic, error)
	Create(ctx context.Context, topic *models.EvaluationTopic) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository instantiates a GORM-backed repository.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.EvaluationTopic, error) {
	var topics []models.EvaluationTopic
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&topics).Error; err != nil {
		return nil, err
	}

	return topics, nil
}

func (r *topicRepository) GetByID(ctx context.Context, id uint) (models.EvaluationTopic, error) {
	var topic models.EvaluationTopic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return models.EvaluationTopic{}, err
	}

	return topic, nil
}

func (r *topicRepository) FindByCode(ctx context.Context, code string) (models.EvaluationTopic, error) {
	var topic models.EvaluationTopic
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&topic).Error; err != nil {
		return models.EvaluationTopic{}, err
	}

	return topic, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *models.EvaluationTopic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&models.EvaluationTopic{}).Where("id = ?", id).Updates(fields).Error
}

func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EvaluationTopic{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
