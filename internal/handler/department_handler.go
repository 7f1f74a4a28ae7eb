package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// DepartmentHandler handles read-only department reference endpoints.
type DepartmentHandler struct {
	service service.DepartmentService
	logger  zerolog.Logger
}

// NewDepartmentHandler constructs the handler.
func NewDepartmentHandler(service service.DepartmentService, logger zerolog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		service: service,
		logger:  logger.With().Str("component", "department_handler").Logger(),
	}
}

// Register wires routes for departments.
func (h *DepartmentHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourceDepartments, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourceDepartments, middleware.ActionRead), h.get)
}

func (h *DepartmentHandler) list(c *fiber.Ctx) error {
	departments, err := h.service.List(c.Context())
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, departments, len(departments))
}

func (h *DepartmentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	department, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, department)
}
