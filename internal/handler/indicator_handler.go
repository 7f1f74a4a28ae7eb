package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/repository"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// IndicatorHandler handles indicator endpoints.
type IndicatorHandler struct {
	service service.IndicatorService
	logger  zerolog.Logger
}

// NewIndicatorHandler constructs the handler.
func NewIndicatorHandler(service service.IndicatorService, logger zerolog.Logger) *IndicatorHandler {
	return &IndicatorHandler{
		service: service,
		logger:  logger.With().Str("component", "indicator_handler").Logger(),
	}
}

// Register wires routes for indicators.
func (h *IndicatorHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourceIndicators, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourceIndicators, middleware.ActionRead), h.get)
	router.Post("", middleware.Permit(middleware.ResourceIndicators, middleware.ActionCreate), h.create)
	router.Put("/:id", middleware.Permit(middleware.ResourceIndicators, middleware.ActionUpdate), h.update)
	router.Delete("/:id", middleware.Permit(middleware.ResourceIndicators, middleware.ActionDelete), h.delete)
}

func (h *IndicatorHandler) list(c *fiber.Ctx) error {
	topicID, err := parseQueryUint(c, "topic_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	active, err := parseQueryBool(c, "is_active")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	indicators, err := h.service.List(c.Context(), repository.IndicatorFilter{
		TopicID: topicID,
		Active:  active,
	})
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, indicators, len(indicators))
}

func (h *IndicatorHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	indicator, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, indicator)
}

func (h *IndicatorHandler) create(c *fiber.Ctx) error {
	var payload dto.IndicatorCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	indicator, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, indicator)
}

func (h *IndicatorHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.IndicatorUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	indicator, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, indicator)
}

func (h *IndicatorHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendMessage(c, "Indicator deleted")
}
