package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware turns a panic into an error for the app ErrorHandler,
// logging the stack with the request id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] id=%v %s %s: %v\n%s", c.Locals(RequestIDKey), c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
