package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/dto"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/service"
	"github.com/okoak/evaluation-api/internal/utils"
)

// TopicHandler handles evaluation topic endpoints.
type TopicHandler struct {
	service service.TopicService
	logger  zerolog.Logger
}

// NewTopicHandler constructs the handler.
func NewTopicHandler(service service.TopicService, logger zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		service: service,
		logger:  logger.With().Str("component", "topic_handler").Logger(),
	}
}

// Register wires routes for evaluation topics.
func (h *TopicHandler) Register(router fiber.Router) {
	router.Get("", middleware.Permit(middleware.ResourceTopics, middleware.ActionRead), h.list)
	router.Get("/:id", middleware.Permit(middleware.ResourceTopics, middleware.ActionRead), h.get)
	router.Post("", middleware.Permit(middleware.ResourceTopics, middleware.ActionCreate), h.create)
	router.Put("/:id", middleware.Permit(middleware.ResourceTopics, middleware.ActionUpdate), h.update)
	router.Delete("/:id", middleware.Permit(middleware.ResourceTopics, middleware.ActionDelete), h.delete)
}

func (h *TopicHandler) list(c *fiber.Ctx) error {
	topics, err := h.service.List(c.Context())
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendList(c, topics, len(topics))
}

func (h *TopicHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	topic, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, topic)
}

func (h *TopicHandler) create(c *fiber.Ctx) error {
	var payload dto.TopicCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	topic, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, topic)
}

func (h *TopicHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.TopicUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	topic, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, topic)
}

func (h *TopicHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendMessage(c, "Topic deleted")
}
