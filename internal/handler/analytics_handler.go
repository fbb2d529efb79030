package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillbase/skillbase-api/internal/dto"
	"github.com/skillbase/skillbase-api/internal/service"
	"github.com/skillbase/skillbase-api/internal/utils"
)

// AnalyticsHandler exposes the training analytics endpoints.
type AnalyticsHandler struct {
	analytics   service.AnalyticsService
	departments service.DepartmentService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(analytics service.AnalyticsService, departments service.DepartmentService, validate *validator.Validate, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:   analytics,
		departments: departments,
		validate:    validate,
		logger:      logger.With().Str("component", "analytics_handler").Logger(),
	}
}

// Register attaches analytics routes to the router group.
func (h *AnalyticsHandler) Register(router fiber.Router) {
	router.Get("", h.get)
	router.Get("/departments", h.listDepartments)
}

func (h *AnalyticsHandler) get(c *fiber.Ctx) error {
	query := dto.AnalyticsQuery{
		Department:  c.Query("department"),
		Period:      c.Query("period"),
		Granularity: c.Query("granularity"),
	}
	if err := h.validate.Struct(query); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid query parameters")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to validate request")
	}

	result, err := h.analytics.GetAnalytics(c.UserContext(), principalFromContext(c), query)
	if err != nil {
		return h.sendEngineError(c, err, "failed to compute analytics")
	}

	return utils.SendSuccess(c, "training analytics", result)
}

func (h *AnalyticsHandler) listDepartments(c *fiber.Ctx) error {
	result, err := h.departments.ListDepartments(c.UserContext(), principalFromContext(c))
	if err != nil {
		return h.sendEngineError(c, err, "failed to list departments")
	}

	return utils.SendSuccess(c, "departments", result)
}

func (h *AnalyticsHandler) sendEngineError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	case errors.Is(err, service.ErrForbidden):
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(message)
		return utils.SendError(c, fiber.StatusInternalServerError, message)
	}
}
