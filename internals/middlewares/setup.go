package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"modulku_backend/internals/configs"
	"modulku_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the global chain. Order matters: recover first so
// it sees panics from everything below, request id before the access log.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware(cfg.LogTimeZone))
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
