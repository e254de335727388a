package serverutils

import (
	"errors"

	"chitty-gateway/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts any error a handler returns into the JSON error shape,
// tagged with the service identifier. Unknown errors become a 500.
func ErrorHandler(service string, log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *AppError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			appErr = &AppError{Code: fiberErr.Code, Message: fiberErr.Message}
		default:
			appErr = NewInternal("Request", err)
		}

		if appErr.Code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  appErr.Error(),
			})
		}

		return ctx.Status(appErr.Code).JSON(ErrorBody(service, appErr))
	}
}
