package serverutils

import (
	"errors"
	"time"

	"chitty-gateway/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; fall back to what it will choose.
			var fe *fiber.Error
			var ae *AppError
			switch {
			case errors.As(err, &ae):
				status = ae.Code
			case errors.As(err, &fe):
				status = fe.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}

		log.Info("HTTP", "Request handled", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}
