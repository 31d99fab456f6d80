package details

import (
	"modulku_backend/internals/features/catalog/repository"
	catalogRoute "modulku_backend/internals/features/catalog/route"
	helper "modulku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func CatalogRoutes(app *fiber.App, store repository.Store, v *validator.Validate, codes helper.StatusPolicy) {

	catalogRoute.CatalogRoutes(app, store, v, codes)

}
