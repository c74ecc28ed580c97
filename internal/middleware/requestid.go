package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// LocalRequestID is the c.Locals key holding the request id.
const LocalRequestID = "rid"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(LocalRequestID, rid)
		return c.Next()
	}
}

// RequestIDFrom returns the request id set by RequestID.
func RequestIDFrom(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalRequestID).(string)
	return rid
}
