package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/okoak/evaluation-api/internal/handler"
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
	"github.com/okoak/evaluation-api/internal/service"
)

// newTestApp wires the full stack against an in-memory database, with the
// given role injected in place of JWT authentication.
func newTestApp(t *testing.T, role models.Role) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EvaluationPeriod{},
		&models.EvaluationTopic{},
		&models.Indicator{},
		&models.EvidenceType{},
		&models.IndicatorEvidence{},
		&models.Assignment{},
		&models.EvaluationResult{},
		&models.VocationalCategory{},
		&models.OrgGroup{},
		&models.Department{},
		&models.VocationalField{},
		&models.DeptField{},
	))

	logger := zerolog.New(io.Discard)
	validate := validator.New(validator.WithRequiredStructEnabled())

	periodRepo := repository.NewPeriodRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	indicatorRepo := repository.NewIndicatorRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	resultRepo := repository.NewResultRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	app := fiber.New()
	withRole := func(c *fiber.Ctx) error {
		c.Locals("user_role", string(role))
		return c.Next()
	}

	handler.NewPeriodHandler(service.NewPeriodService(periodRepo, validate, logger), logger).
		Register(app.Group("/api/periods", withRole))
	handler.NewTopicHandler(service.NewTopicService(topicRepo, validate, logger), logger).
		Register(app.Group("/api/topics", withRole))
	handler.NewIndicatorHandler(service.NewIndicatorService(indicatorRepo, referenceRepo, validate, logger), logger).
		Register(app.Group("/api/indicators", withRole))
	handler.NewAssignmentHandler(service.NewAssignmentService(assignmentRepo, referenceRepo, validate, logger), logger).
		Register(app.Group("/api/assignments", withRole))
	handler.NewResultHandler(service.NewResultService(resultRepo, referenceRepo, validate, logger), logger).
		Register(app.Group("/api/results", withRole))
	handler.NewDepartmentHandler(service.NewDepartmentService(departmentRepo, logger), logger).
		Register(app.Group("/api/departments", withRole))

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Items   json.RawMessage `json:"items"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	defer resp.Body.Close()
	var decoded envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}
