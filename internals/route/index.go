// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"modulku_backend/internals/configs"
	"modulku_backend/internals/features/catalog/repository"
	helper "modulku_backend/internals/helpers"
	routeDetails "modulku_backend/internals/route/details"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store repository.Store, cfg configs.Config) {
	startTime := time.Now()
	codes := helper.PolicyFor(cfg.StatusMode)
	v := validator.New()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, startTime)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, v, codes)

	log.Printf("[INFO] Setting up CatalogRoutes (status mode %s)...", cfg.StatusMode)
	routeDetails.CatalogRoutes(app, store, v, codes)
}
