package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/models"
)

// IndicatorFilter describes the optional list filters.
type IndicatorFilter struct {
	TopicID *uint
	Active  *bool
}

// IndicatorRepository defines persistence operations for indicators and
// their evidence-type mappings.
type IndicatorRepository interface {
	List(ctx context.Context, filter IndicatorFilter) ([]models.Indicator, error)
	GetByID(ctx context.Context, id uint) (models.Indicator, error)
	FindByCode(ctx context.Context, code string) (models.Indicator, error)
	Create(ctx context.Context, indicator *models.Indicator, evidenceTypeIDs []uint) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	ReplaceEvidence(ctx context.Context, indicatorID uint, evidenceTypeIDs []uint) error
	ListEvidenceTypes(ctx context.Context, indicatorID uint) ([]models.EvidenceType, error)
	Delete(ctx context.Context, id uint) error
}

type indicatorRepository struct {
	db *gorm.DB
}

// NewIndicatorRepository instantiates a GORM-backed repository.
func NewIndicatorRepository(db *gorm.DB) IndicatorRepository {
	return &indicatorRepository{db: db}
}

func (r *indicatorRepository) List(ctx context.Context, filter IndicatorFilter) ([]models.Indicator, error) {
	query := r.db.WithContext(ctx)

	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var indicators []models.Indicator
	if err := query.Order("id DESC").Find(&indicators).Error; err != nil {
		return nil, err
	}

	return indicators, nil
}

func (r *indicatorRepository) GetByID(ctx context.Context, id uint) (models.Indicator, error) {
	var indicator models.Indicator
	if err := r.db.WithContext(ctx).First(&indicator, id).Error; err != nil {
		return models.Indicator{}, err
	}

	return indicator, nil
}

func (r *indicatorRepository) FindByCode(ctx context.Context, code string) (models.Indicator, error) {
	var indicator models.Indicator
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&indicator).Error; err != nil {
		return models.Indicator{}, err
	}

	return indicator, nil
}

func (r *indicatorRepository) Create(ctx context.Context, indicator *models.Indicator, evidenceTypeIDs []uint) error {
	if err := r.db.WithContext(ctx).Create(indicator).Error; err != nil {
		return err
	}

	return r.insertEvidence(ctx, indicator.ID, evidenceTypeIDs)
}

func (r *indicatorRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&models.Indicator{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceEvidence swaps the full evidence mapping set: delete-all then
// insert-all, no diffing.
func (r *indicatorRepository) ReplaceEvidence(ctx context.Context, indicatorID uint, evidenceTypeIDs []uint) error {
	if err := r.db.WithContext(ctx).Where("indicator_id = ?", indicatorID).Delete(&models.IndicatorEvidence{}).Error; err != nil {
		return err
	}

	return r.insertEvidence(ctx, indicatorID, evidenceTypeIDs)
}

func (r *indicatorRepository) insertEvidence(ctx context.Context, indicatorID uint, evidenceTypeIDs []uint) error {
	for _, evidenceTypeID := range evidenceTypeIDs {
		mapping := models.IndicatorEvidence{IndicatorID: indicatorID, EvidenceTypeID: evidenceTypeID}
		if err := r.db.WithContext(ctx).Create(&mapping).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *indicatorRepository) ListEvidenceTypes(ctx context.Context, indicatorID uint) ([]models.EvidenceType, error) {
	var types []models.EvidenceType
	err := r.db.WithContext(ctx).
		Table("indicator_evidence AS ie").
		Joins("JOIN evidence_types AS et ON et.id = ie.evidence_type_id").
		Where("ie.indicator_id = ?", indicatorID).
		Select("et.id, et.code, et.name_th").
		Scan(&types).Error
	if err != nil {
		return nil, err
	}

	return types, nil
}

// Delete removes the indicator together with its evidence mappings so no
// orphaned association rows remain.
func (r *indicatorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("indicator_id = ?", id).Delete(&models.IndicatorEvidence{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&models.Indicator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
