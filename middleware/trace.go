package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags each request with an id for log correlation, honoring one
// supplied by the caller.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("requestId", rid)
		c.Set("X-Request-Id", rid)
		return c.Next()
	}
}
