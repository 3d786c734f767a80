package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/middleware"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/observability"
	"github.com/noah-isme/research-connect-api/internal/service"
	"github.com/noah-isme/research-connect-api/internal/utils"
)

// ApplicationHandler manages application workflow endpoints.
type ApplicationHandler struct {
	service service.ApplicationService
	logger  zerolog.Logger
}

// NewApplicationHandler builds an application handler instance.
func NewApplicationHandler(service service.ApplicationService, logger zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger.With().Str("component", "application_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *ApplicationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", middleware.RequireRole(models.RoleStudent), h.apply)
	router.Post("/:id/accept", middleware.RequireRole(models.RoleFaculty), h.accept)
	router.Post("/:id/reject", middleware.RequireRole(models.RoleFaculty), h.reject)
	router.Post("/:id/withdraw", middleware.RequireRole(models.RoleStudent), h.withdraw)
}

// list serves both the student view (?student_id=) and the project owner
// view (?project_id=). Students may only list their own applications.
func (h *ApplicationHandler) list(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	projectID, err := parseQueryUint(c, "project_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	caller := principalFromContext(c)

	switch {
	case projectID != nil:
		applications, err := h.service.ListForProject(c.Context(), *projectID, caller)
		if err != nil {
			return h.handleError(c, err)
		}
		return utils.SendSuccess(c, "applications retrieved", applications)
	case studentID != nil:
		if caller.Role == models.RoleStudent && caller.ID != *studentID {
			return utils.SendError(c, fiber.StatusForbidden, "students may only list their own applications")
		}
		applications, err := h.service.ListForStudent(c.Context(), *studentID)
		if err != nil {
			return h.handleError(c, err)
		}
		return utils.SendSuccess(c, "applications retrieved", applications)
	case caller.Role == models.RoleStudent:
		applications, err := h.service.ListForStudent(c.Context(), caller.ID)
		if err != nil {
			return h.handleError(c, err)
		}
		return utils.SendSuccess(c, "applications retrieved", applications)
	default:
		return utils.SendError(c, fiber.StatusBadRequest, "student_id or project_id is required")
	}
}

func (h *ApplicationHandler) apply(c *fiber.Ctx) error {
	var payload dto.ApplicationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	application, err := h.service.Apply(c.Context(), userIDFromContext(c), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	observability.Transitions().WithLabelValues("apply").Inc()

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "application submitted", application)
}

func (h *ApplicationHandler) accept(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	application, err := h.service.Approve(c.Context(), id, userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	observability.Transitions().WithLabelValues("accept").Inc()

	return utils.SendSuccess(c, "application accepted", application)
}

func (h *ApplicationHandler) reject(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	application, err := h.service.Reject(c.Context(), id, userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	observability.Transitions().WithLabelValues("reject").Inc()

	return utils.SendSuccess(c, "application rejected", application)
}

func (h *ApplicationHandler) withdraw(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	application, err := h.service.Withdraw(c.Context(), id, userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	observability.Transitions().WithLabelValues("withdraw").Inc()

	return utils.SendSuccess(c, "application withdrawn", application)
}

func (h *ApplicationHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "application not found")
	case errors.Is(err, service.ErrProjectNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "project not found")
	case errors.Is(err, service.ErrProjectNotRecruiting):
		return utils.SendError(c, fiber.StatusConflict, "project is not recruiting")
	case errors.Is(err, service.ErrDuplicateApplication):
		return utils.SendError(c, fiber.StatusConflict, "an application for this project already exists")
	case errors.Is(err, service.ErrProjectFull):
		return utils.SendError(c, fiber.StatusConflict, "project has reached its student capacity")
	case errors.Is(err, service.ErrApplicationNotPending):
		return utils.SendError(c, fiber.StatusConflict, "application is no longer pending")
	case errors.Is(err, service.ErrNotProjectOwner):
		return utils.SendError(c, fiber.StatusForbidden, "only the owning faculty may decide this application")
	case errors.Is(err, service.ErrNotApplicant):
		return utils.SendError(c, fiber.StatusForbidden, "only the applying student may withdraw")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
