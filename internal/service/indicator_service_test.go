package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
)

func newIndicatorService(t *testing.T) (IndicatorService, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	repo := repository.NewIndicatorRepository(db)
	refs := repository.NewReferenceRepository(db)
	service := NewIndicatorService(repo, refs, validator.New(validator.WithRequiredStructEnabled()), testLogger())
	return service, db
}

func TestIndicatorServiceCreateAppliesDefaults(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID: topic.ID,
		Code:    "T1.1",
		NameTH:  "การวางแผนการสอน",
	})
	require.NoError(t, err)
	require.Equal(t, models.IndicatorTypeScore1To4, created.Type)
	require.Equal(t, 1.0, created.Weight)
	require.Equal(t, 1, created.MinScore)
	require.Equal(t, 4, created.MaxScore)
	require.True(t, created.Active)
	require.Empty(t, created.EvidenceTypes)
}

func TestIndicatorServiceCreateMissingFields(t *testing.T) {
	service, _ := newIndicatorService(t)

	_, err := service.Create(context.Background(), dto.IndicatorCreateRequest{Code: "T1.1"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "topic_id, code, and name_th are required", validationErr.Message)
}

func TestIndicatorServiceCreateMissingTopic(t *testing.T) {
	service, _ := newIndicatorService(t)

	_, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID: 42,
		Code:    "T1.1",
		NameTH:  "ตัวชี้วัด",
	})

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "Topic not found", notFoundErr.Message)
}

func TestIndicatorServiceCreateInvalidScoreRange(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")

	minScore := 5
	maxScore := 2
	_, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:  topic.ID,
		Code:     "T1.1",
		NameTH:   "ตัวชี้วัด",
		MinScore: &minScore,
		MaxScore: &maxScore,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "min_score must not exceed max_score", validationErr.Message)
}

func TestIndicatorServiceCreateDuplicateCode(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")

	_, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID: topic.ID,
		Code:    "T1.1",
		NameTH:  "ตัวแรก",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID: topic.ID,
		Code:    "T1.1",
		NameTH:  "ตัวซ้ำ",
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Equal(t, "Code already exists", conflictErr.Message)
}

func TestIndicatorServiceCreateWithEvidenceTypes(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")
	first := seedEvidenceType(t, db, "E1")
	second := seedEvidenceType(t, db, "E2")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:         topic.ID,
		Code:            "T1.1",
		NameTH:          "ตัวชี้วัด",
		EvidenceTypeIDs: []uint{first.ID, second.ID},
	})
	require.NoError(t, err)
	require.Len(t, created.EvidenceTypes, 2)
}

func TestIndicatorServiceUpdateReplacesEvidenceSet(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")
	first := seedEvidenceType(t, db, "E1")
	second := seedEvidenceType(t, db, "E2")
	third := seedEvidenceType(t, db, "E3")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:         topic.ID,
		Code:            "T1.1",
		NameTH:          "ตัวชี้วัด",
		EvidenceTypeIDs: []uint{first.ID, second.ID},
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, dto.IndicatorUpdateRequest{
		EvidenceTypeIDs: dto.NewOptional([]uint{third.ID}),
	})
	require.NoError(t, err)
	require.Len(t, updated.EvidenceTypes, 1)
	require.Equal(t, third.ID, updated.EvidenceTypes[0].ID)

	var mappings int64
	require.NoError(t, db.Model(&models.IndicatorEvidence{}).Where("indicator_id = ?", created.ID).Count(&mappings).Error)
	require.EqualValues(t, 1, mappings)
}

func TestIndicatorServiceUpdateNullEvidenceClearsSet(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")
	evidenceType := seedEvidenceType(t, db, "E1")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:         topic.ID,
		Code:            "T1.1",
		NameTH:          "ตัวชี้วัด",
		EvidenceTypeIDs: []uint{evidenceType.ID},
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, dto.IndicatorUpdateRequest{
		EvidenceTypeIDs: dto.NullOptional[[]uint](),
	})
	require.NoError(t, err)
	require.Empty(t, updated.EvidenceTypes)
}

func TestIndicatorServiceUpdateAbsentEvidenceUntouched(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")
	evidenceType := seedEvidenceType(t, db, "E1")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:         topic.ID,
		Code:            "T1.1",
		NameTH:          "ตัวชี้วัด",
		EvidenceTypeIDs: []uint{evidenceType.ID},
	})
	require.NoError(t, err)

	name := "ตัวชี้วัดปรับปรุง"
	updated, err := service.Update(context.Background(), created.ID, dto.IndicatorUpdateRequest{NameTH: &name})
	require.NoError(t, err)
	require.Equal(t, name, updated.NameTH)
	require.Len(t, updated.EvidenceTypes, 1)
}

func TestIndicatorServiceDeleteRemovesEvidenceMappings(t *testing.T) {
	service, db := newIndicatorService(t)
	topic := seedTopic(t, db, "T1")
	evidenceType := seedEvidenceType(t, db, "E1")

	created, err := service.Create(context.Background(), dto.IndicatorCreateRequest{
		TopicID:         topic.ID,
		Code:            "T1.1",
		NameTH:          "ตัวชี้วัด",
		EvidenceTypeIDs: []uint{evidenceType.ID},
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	var mappings int64
	require.NoError(t, db.Model(&models.IndicatorEvidence{}).Where("indicator_id = ?", created.ID).Count(&mappings).Error)
	require.Zero(t, mappings)
}

func TestIndicatorServiceListFiltersByTopicAndActive(t *testing.T) {
	service, db := newIndicatorService(t)
	first := seedTopic(t, db, "T1")
	second := seedTopic(t, db, "T2")

	seedIndicator(t, db, first.ID, "T1.1")
	seedIndicator(t, db, second.ID, "T2.1")

	inactive := seedIndicator(t, db, first.ID, "T1.2")
	require.NoError(t, db.Model(&models.Indicator{}).Where("id = ?", inactive.ID).Update("active", false).Error)

	byTopic, err := service.List(context.Background(), repository.IndicatorFilter{TopicID: &first.ID})
	require.NoError(t, err)
	require.Len(t, byTopic, 2)

	active := true
	activeOnly, err := service.List(context.Background(), repository.IndicatorFilter{TopicID: &first.ID, Active: &active})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	require.Equal(t, "T1.1", activeOnly[0].Code)
}
