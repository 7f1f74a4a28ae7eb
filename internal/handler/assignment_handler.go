package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// AssignmentHandler handles evaluator-evaluatee assignment endpoints.
type AssignmentHandler struct {
	service service.AssignmentService
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(service service.AssignmentService, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register wires routes for assignments.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourceAssignments, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourceAssignments, middleware.ActionRead), h.get)
	router.Post("", middleware.Permit(middleware.ResourceAssignments, middleware.ActionCreate), h.create)
	router.Put("/:id", middleware.Permit(middleware.ResourceAssignments, middleware.ActionUpdate), h.update)
	router.Delete("/:id", middleware.Permit(middleware.ResourceAssignments, middleware.ActionDelete), h.delete)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	var filters dto.AssignmentListRequest
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

	assignments, err := h.service.List(c.Context(), filters)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, assignments, len(assignments))
}

func (h *AssignmentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, assignment)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	assignment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, assignment)
}

func (h *AssignmentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.AssignmentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	assignment, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, assignment)
}

func (h *AssignmentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendMessage(c, "Assignment deleted")
}
