package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"modulku_backend/internals/features/catalog/repository"
)

const StoreKey = "store"

// StoreMiddleware exposes the catalog store to handlers via c.Locals.
func StoreMiddleware(store repository.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(StoreKey, store)
		return c.Next()
	}
}

// StoreFrom returns the store put there by StoreMiddleware, or nil.
func StoreFrom(c *fiber.Ctx) repository.Store {
	s, _ := c.Locals(StoreKey).(repository.Store)
	return s
}
