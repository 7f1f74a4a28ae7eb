package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// PeriodHandler handles evaluation period endpoints.
type PeriodHandler struct {
	service service.PeriodService
	logger  zerolog.Logger
}

// NewPeriodHandler constructs the handler.
func NewPeriodHandler(service service.PeriodService, logger zerolog.Logger) *PeriodHandler {
	return &PeriodHandler{
		service: service,
		logger:  logger.With().Str("component", "period_handler").Logger(),
	}
}

// Register wires routes for evaluation periods.
func (h *PeriodHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourcePeriods, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourcePeriods, middleware.ActionRead), h.get)
	router.Post("", middleware.Permit(middleware.ResourcePeriods, middleware.ActionCreate), h.create)
	router.Put("/:id", middleware.Permit(middleware.ResourcePeriods, middleware.ActionUpdate), h.update)
	router.Delete("/:id", middleware.Permit(middleware.ResourcePeriods, middleware.ActionDelete), h.delete)
}

func (h *PeriodHandler) list(c *fiber.Ctx) error {
	isActive, err := parseQueryBool(c, "is_active")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	periods, err := h.service.List(c.Context(), isActive)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, periods, len(periods))
}

func (h *PeriodHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	period, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, period)
}

func (h *PeriodHandler) create(c *fiber.Ctx) error {
	var payload dto.PeriodCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	period, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, period)
}

func (h *PeriodHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.PeriodUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	period, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, period)
}

func (h *PeriodHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendMessage(c, "Period deleted")
}
