package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okoak/evaluation-api/internal/models"
)

func TestResultRepositoryCountByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewResultRepository(db)

	period := createPeriod(t, db, "2568-1")
	evaluator := createUser(t, db, "somchai", models.RoleEvaluator)
	evaluatee := createUser(t, db, "somsri", models.RoleEvaluatee)
	topic := models.EvaluationTopic{Code: "T1", TitleTH: "ด้านแรก", Active: true}
	require.NoError(t, db.Create(&topic).Error)
	indicator := models.Indicator{TopicID: topic.ID, Code: "T1.1", NameTH: "ตัวชี้วัด", Type: models.IndicatorTypeScore1To4, MinScore: 1, MaxScore: 4, Weight: 1, Active: true}
	require.NoError(t, db.Create(&indicator).Error)

	statuses := []string{models.ResultStatusDraft, models.ResultStatusDraft, models.ResultStatusSubmitted}
	for _, status := range statuses {
		result := models.EvaluationResult{
			PeriodID: period.ID, EvaluateeID: evaluatee.ID, EvaluatorID: evaluator.ID,
			TopicID: topic.ID, IndicatorID: indicator.ID, Status: status,
		}
		require.NoError(t, repo.Create(context.Background(), &result))
	}

	counts, err := repo.CountByStatus(context.Background(), period.ID)
	require.NoError(t, err)

	byStatus := make(map[string]int64, len(counts))
	for _, row := range counts {
		byStatus[row.Status] = row.Count
	}
	require.EqualValues(t, 2, byStatus[models.ResultStatusDraft])
	require.EqualValues(t, 1, byStatus[models.ResultStatusSubmitted])
}

func TestResultRepositoryGetRowJoinsAllNames(t *testing.T) {
	db := openTestDB(t)
	repo := NewResultRepository(db)

	period := createPeriod(t, db, "2568-1")
	evaluator := createUser(t, db, "somchai", models.RoleEvaluator)
	evaluatee := createUser(t, db, "somsri", models.RoleEvaluatee)
	topic := models.EvaluationTopic{Code: "T1", TitleTH: "ด้านแรก", Active: true}
	require.NoError(t, db.Create(&topic).Error)
	indicator := models.Indicator{TopicID: topic.ID, Code: "T1.1", NameTH: "ตัวชี้วัด", Type: models.IndicatorTypeScore1To4, MinScore: 1, MaxScore: 4, Weight: 1, Active: true}
	require.NoError(t, db.Create(&indicator).Error)

	result := models.EvaluationResult{
		PeriodID: period.ID, EvaluateeID: evaluatee.ID, EvaluatorID: evaluator.ID,
		TopicID: topic.ID, IndicatorID: indicator.ID, Status: models.ResultStatusDraft,
	}
	require.NoError(t, repo.Create(context.Background(), &result))

	row, err := repo.GetRow(context.Background(), result.ID)
	require.NoError(t, err)
	require.Equal(t, period.NameTH, row.PeriodName)
	require.Equal(t, topic.TitleTH, row.TopicName)
	require.Equal(t, indicator.NameTH, row.IndicatorName)
	require.Equal(t, evaluator.NameTH, row.EvaluatorName)
	require.Equal(t, evaluatee.NameTH, row.EvaluateeName)
}
