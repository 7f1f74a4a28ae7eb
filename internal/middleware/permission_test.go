package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/models"
)

func TestAllowedPolicy(t *testing.T) {
	cases := []struct {
		name     string
		resource middleware.Resource
		action   middleware.Action
		role     models.Role
		want     bool
	}{
		{"evaluatee reads periods", middleware.ResourcePeriods, middleware.ActionRead, models.RoleEvaluatee, true},
		{"evaluator cannot create periods", middleware.ResourcePeriods, middleware.ActionCreate, models.RoleEvaluator, false},
		{"admin creates periods", middleware.ResourcePeriods, middleware.ActionCreate, models.RoleAdmin, true},
		{"evaluator creates results", middleware.ResourceResults, middleware.ActionCreate, models.RoleEvaluator, true},
		{"evaluatee updates results", middleware.ResourceResults, middleware.ActionUpdate, models.RoleEvaluatee, true},
		{"evaluator cannot delete results", middleware.ResourceResults, middleware.ActionDelete, models.RoleEvaluator, false},
		{"admin deletes results", middleware.ResourceResults, middleware.ActionDelete, models.RoleAdmin, true},
		{"departments are read-only even for admin", middleware.ResourceDepartments, middleware.ActionCreate, models.RoleAdmin, false},
		{"progress is read-only", middleware.ResourceProgress, middleware.ActionRead, models.RoleEvaluatee, true},
		{"unknown resource denied", middleware.Resource("reports"), middleware.ActionRead, models.RoleAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, middleware.Allowed(tc.resource, tc.action, tc.role))
		})
	}
}

func TestPermitDeniesWithoutRole(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded", middleware.Permit(middleware.ResourcePeriods, middleware.ActionRead), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPermitDeniesUnknownRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_role", "superuser")
		return c.Next()
	})
	app.Get("/guarded", middleware.Permit(middleware.ResourcePeriods, middleware.ActionRead), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPermitAllowsKnownRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_role", "evaluator")
		return c.Next()
	})
	app.Get("/guarded", middleware.Permit(middleware.ResourcePeriods, middleware.ActionRead), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParseRoleNormalises(t *testing.T) {
	role, ok := models.ParseRole("  Admin ")
	require.True(t, ok)
	require.Equal(t, models.RoleAdmin, role)

	_, ok = models.ParseRole("superuser")
	require.False(t, ok)
}
