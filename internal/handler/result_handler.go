package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// ResultHandler handles evaluation result endpoints.
type ResultHandler struct {
	service service.ResultService
	logger  zerolog.Logger
}

// NewResultHandler constructs the handler.
func NewResultHandler(service service.ResultService, logger zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		service: service,
		logger:  logger.With().Str("component", "result_handler").Logger(),
	}
}

// Register wires routes for evaluation results.
func (h *ResultHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourceResults, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourceResults, middleware.ActionRead), h.get)
	router.Post("", middleware.Permit(middleware.ResourceResults, middleware.ActionCreate), h.create)
	router.Put("/:id", middleware.Permit(middleware.ResourceResults, middleware.ActionUpdate), h.update)
	router.Delete("/:id", middleware.Permit(middleware.ResourceResults, middleware.ActionDelete), h.delete)
}

func (h *ResultHandler) list(c *fiber.Ctx) error {
	var filters dto.ResultListRequest
	var err error

	if filters.PeriodID, err = parseQueryUint(c, "period_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if filters.EvaluatorID, err = parseQueryUint(c, "evaluator_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if filters.EvaluateeID, err = parseQueryUint(c, "evaluatee_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if filters.TopicID, err = parseQueryUint(c, "topic_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if filters.IndicatorID, err = parseQueryUint(c, "indicator_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	filters.Status = strings.TrimSpace(c.Query("status"))

	results, err := h.service.List(c.Context(), filters)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, results, len(results))
}

func (h *ResultHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result)
}

func (h *ResultHandler) create(c *fiber.Ctx) error {
	var payload dto.ResultCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, result)
}

func (h *ResultHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ResultUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result)
}

func (h *ResultHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendMessage(c, "Result deleted")
}
