package handlers

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storehub/internal/errs"
	"storehub/internal/middleware"
)

const (
	defaultMessage = "Done"
	localStack     = "stack"
)

// respond writes the success envelope {message, data}.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	if message == "" {
		message = defaultMessage
	}
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return fiber.StatusNotFound
	case errs.KindConflict:
		return fiber.StatusConflict
	case errs.KindUnauthorized:
		return fiber.StatusUnauthorized
	case errs.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

// ErrorHandler is the single place failures become responses. In development
// the raw error and a stack are included: the panic stack for recovered
// panics, otherwise the one recorded when a classified error was built.
func ErrorHandler(dev bool, log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			status int
			body   = fiber.Map{}
			verr   *ValidationError
			ferr   *fiber.Error
		)
		switch {
		case errors.As(err, &verr):
			status = fiber.StatusBadRequest
			body["message"] = "Validation error"
			body["details"] = verr.Details
		case errors.As(err, &ferr):
			status = ferr.Code
			body["message"] = ferr.Message
		default:
			kind := errs.KindOf(err)
			status = StatusOf(kind)
			body["message"] = errs.MessageOf(err)
			if kind == errs.KindUnclassified {
				log.Warn("unclassified request failure",
					zap.String("rid", middleware.RequestIDFrom(c)),
					zap.String("path", c.Path()),
					zap.Error(err))
			}
		}

		if dev {
			body["error"] = err.Error()
			if stack, ok := c.Locals(localStack).(string); ok {
				body["stack"] = stack
			} else if stack := errs.StackOf(err); stack != "" {
				body["stack"] = stack
			}
		}
		return c.Status(status).JSON(body)
	}
}

// captureStack keeps the stack of a recovered panic for ErrorHandler.
func captureStack(c *fiber.Ctx, _ interface{}) {
	c.Locals(localStack, string(debug.Stack()))
}

// invalidRoute answers every request no route matched.
func invalidRoute(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Invalid routing")
}
