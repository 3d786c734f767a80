package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/service"
	"github.com/noah-isme/research-connect-api/internal/utils"
)

// SkillHandler manages skill catalogue endpoints.
type SkillHandler struct {
	service service.SkillService
	logger  zerolog.Logger
}

// NewSkillHandler builds a skill handler instance.
func NewSkillHandler(service service.SkillService, logger zerolog.Logger) *SkillHandler {
	return &SkillHandler{
		service: service,
		logger:  logger.With().Str("component", "skill_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *SkillHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *SkillHandler) list(c *fiber.Ctx) error {
	skills, err := h.service.List(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "skills retrieved", skills)
}

func (h *SkillHandler) create(c *fiber.Ctx) error {
	var payload dto.SkillCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	skill, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "skill created", skill)
}

func (h *SkillHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrSkillExists):
		return utils.SendError(c, fiber.StatusConflict, "skill already exists")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
