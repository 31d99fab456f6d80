package routes

import (
	"time"

	"modulku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, startTime time.Time) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "OK"
		httpStatus := fiber.StatusOK

		store := middlewares.StoreFrom(c)
		var modules, submodules int
		if store == nil {
			status, httpStatus = "DOWN", fiber.StatusServiceUnavailable
		} else if m, s, err := store.Counts(c.UserContext()); err != nil {
			status, httpStatus = "DOWN", fiber.StatusServiceUnavailable
		} else {
			modules, submodules = m, s
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         status,
			"modules":        modules,
			"submodules":     submodules,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startTime).Seconds()),
		})
	})
}
