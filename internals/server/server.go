package server

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"modulku_backend/internals/configs"
	"modulku_backend/internals/features/catalog/repository"
	helper "modulku_backend/internals/helpers"
	"modulku_backend/internals/middlewares"
	routes "modulku_backend/internals/route"
)

// NewApp builds the Fiber app with middleware and routes mounted on store.
func NewApp(cfg configs.Config, store repository.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          errorHandler,
	})

	middlewares.SetupMiddlewares(app, cfg)
	app.Use(middlewares.StoreMiddleware(store))

	routes.SetupRoutes(app, store, cfg)
	return app
}

// errorHandler renders errors that escaped a handler (unknown routes,
// recovered panics) in the same {success,message} shape as the handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		log.Printf("[ERROR] id=%v %s %s: %v", c.Locals(middlewares.RequestIDKey), c.Method(), c.OriginalURL(), err)
	}
	return helper.FromFiberError(c, err)
}
