package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/okoak/evaluation-api/internal/utils"
)

func performRequest(t *testing.T, handler fiber.Handler) (*http.Response, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestSendSuccessWrapsData(t *testing.T) {
	resp, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, fiber.Map{"id": 1})
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
	require.NotContains(t, body, "items")
}

func TestSendCreatedUses201(t *testing.T) {
	resp, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendCreated(c, fiber.Map{"id": 1})
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])
}

func TestSendListIncludesTotal(t *testing.T) {
	resp, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendList(c, []int{1, 2}, 2)
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, float64(2), body["total"])
	require.NotNil(t, body["items"])
}

func TestSendListZeroTotalStillPresent(t *testing.T) {
	_, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendList(c, []int{}, 0)
	})

	require.Contains(t, body, "total")
	require.Equal(t, float64(0), body["total"])
}

func TestSendErrorEnvelope(t *testing.T) {
	resp, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusNotFound, "Period not found")
	})

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Period not found", body["message"])
}

func TestSendErrorDefaultsMessage(t *testing.T) {
	_, body := performRequest(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusInternalServerError, "")
	})

	require.Equal(t, "error", body["message"])
}
