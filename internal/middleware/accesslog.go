package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccessLog writes one line per request. Errors from downstream handlers are
// rendered through the app's ErrorHandler first so the logged status is the
// one the client sees.
func AccessLog(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("rid", RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.Int("size", len(c.Response().Body())),
		}
		if status >= fiber.StatusInternalServerError {
			l.Error("HTTP", fields...)
		} else {
			l.Info("HTTP", fields...)
		}
		return nil
	}
}
