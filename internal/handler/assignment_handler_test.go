package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/models"
)

func seedAssignmentRefs(t *testing.T, db *gorm.DB) (models.EvaluationPeriod, models.User, models.User) {
	t.Helper()

	period := models.EvaluationPeriod{Code: "2568-1", NameTH: "รอบที่ 1", BuddhistYear: 2568, StartDate: "2025-10-01", EndDate: "2026-03-31"}
	require.NoError(t, db.Create(&period).Error)
	evaluator := models.User{Username: "somchai", NameTH: "สมชาย ใจดี", Role: models.RoleEvaluator}
	require.NoError(t, db.Create(&evaluator).Error)
	evaluatee := models.User{Username: "somsri", NameTH: "สมศรี ขยัน", Role: models.RoleEvaluatee}
	require.NoError(t, db.Create(&evaluatee).Error)

	return period, evaluator, evaluatee
}

func TestAssignmentHandlerCreateReturnsNames(t *testing.T) {
	app, db := newTestApp(t, models.RoleAdmin)
	period, evaluator, evaluatee := seedAssignmentRefs(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/assignments", fiber.Map{
		"period_id":    period.ID,
		"evaluator_id": evaluator.ID,
		"evaluatee_id": evaluatee.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	decoded := decodeEnvelope(t, resp)
	var assignment dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(decoded.Data, &assignment))
	require.Equal(t, evaluator.NameTH, assignment.EvaluatorName)
	require.Equal(t, evaluatee.NameTH, assignment.EvaluateeName)
}

func TestAssignmentHandlerMissingPeriodLeavesNoRow(t *testing.T) {
	app, db := newTestApp(t, models.RoleAdmin)
	_, evaluator, evaluatee := seedAssignmentRefs(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/assignments", fiber.Map{
		"period_id":    999,
		"evaluator_id": evaluator.ID,
		"evaluatee_id": evaluatee.ID,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	decoded := decodeEnvelope(t, resp)
	require.Equal(t, "Period not found", decoded.Message)

	var total int64
	require.NoError(t, db.Model(&models.Assignment{}).Count(&total).Error)
	require.Zero(t, total)
}

func TestAssignmentHandlerDuplicateReturns409(t *testing.T) {
	app, db := newTestApp(t, models.RoleAdmin)
	period, evaluator, evaluatee := seedAssignmentRefs(t, db)

	payload := fiber.Map{
		"period_id":    period.ID,
		"evaluator_id": evaluator.ID,
		"evaluatee_id": evaluatee.ID,
	}

	resp := doJSON(t, app, http.MethodPost, "/api/assignments", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/assignments", payload)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	decoded := decodeEnvelope(t, resp)
	require.Equal(t, "Assignment already exists for this evaluator-evaluatee-period", decoded.Message)
}

func TestAssignmentHandlerUpdateNullDeptClears(t *testing.T) {
	app, db := newTestApp(t, models.RoleAdmin)
	period, evaluator, evaluatee := seedAssignmentRefs(t, db)

	deptID := uint(3)
	assignment := models.Assignment{PeriodID: period.ID, EvaluatorID: evaluator.ID, EvaluateeID: evaluatee.ID, DeptID: &deptID}
	require.NoError(t, db.Create(&assignment).Error)

	resp := doJSON(t, app, http.MethodPut, "/api/assignments/1", json.RawMessage(`{"dept_id":null}`))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decoded := decodeEnvelope(t, resp)
	var updated dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(decoded.Data, &updated))
	require.Nil(t, updated.DeptID)
}

func TestAssignmentHandlerListFilterByPeriod(t *testing.T) {
	app, db := newTestApp(t, models.RoleEvaluator)
	period, evaluator, evaluatee := seedAssignmentRefs(t, db)

	otherPeriod := models.EvaluationPeriod{Code: "2568-2", NameTH: "รอบที่ 2", BuddhistYear: 2568, StartDate: "2026-04-01", EndDate: "2026-09-30"}
	require.NoError(t, db.Create(&otherPeriod).Error)

	require.NoError(t, db.Create(&models.Assignment{PeriodID: period.ID, EvaluatorID: evaluator.ID, EvaluateeID: evaluatee.ID}).Error)
	require.NoError(t, db.Create(&models.Assignment{PeriodID: otherPeriod.ID, EvaluatorID: evaluator.ID, EvaluateeID: evaluatee.ID}).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/assignments?period_id=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decoded := decodeEnvelope(t, resp)
	require.NotNil(t, decoded.Total)
	require.Equal(t, 1, *decoded.Total)
}

func TestAssignmentHandlerWriteForbiddenForEvaluatee(t *testing.T) {
	app, db := newTestApp(t, models.RoleEvaluatee)
	period, evaluator, evaluatee := seedAssignmentRefs(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/assignments", fiber.Map{
		"period_id":    period.ID,
		"evaluator_id": evaluator.ID,
		"evaluatee_id": evaluatee.ID,
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
