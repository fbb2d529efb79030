package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillbase/skillbase-api/internal/middleware"
	"github.com/skillbase/skillbase-api/internal/service"
)

func principalFromContext(c *fiber.Ctx) service.Principal {
	principal := service.Principal{}
	if v := c.Locals("user_id"); v != nil {
		if id, ok := v.(uint); ok {
			principal.UserID = id
		}
	}
	if v := c.Locals("user_role"); v != nil {
		if role, ok := v.(string); ok {
			principal.Role = role
		}
	}
	if v := c.Locals("user_department"); v != nil {
		if department, ok := v.(string); ok {
			principal.Department = department
		}
	}
	return principal
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
