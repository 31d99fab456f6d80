package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "reqid"
)

// RequestID keeps an incoming X-Request-ID or mints one, and echoes it back.
// With timeout > 0 the handler's UserContext gets that deadline, which the
// store checks before touching data.
func RequestID(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Locals(RequestIDKey, id)

		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}
		return c.Next()
	}
}
