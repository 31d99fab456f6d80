// file: internals/features/catalog/route/catalog_route.go
package route

import (
	catalogController "modulku_backend/internals/features/catalog/controller"
	"modulku_backend/internals/features/catalog/repository"
	helper "modulku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/*
Catalog routes (public, no auth):

	GET  /
	GET  /api/moduledropdown?status=N
	POST /api/createmodule
	PUT  /api/editmodule/:id
	POST /api/createsubmodule
	PUT  /api/editsubmodule/:id
*/
func CatalogRoutes(r fiber.Router, store repository.Store, v *validator.Validate, codes helper.StatusPolicy) {
	moduleCtl := catalogController.NewModulesController(store, v, codes)
	submoduleCtl := catalogController.NewSubmodulesController(store, v, codes)

	r.Get("/", moduleCtl.List)

	api := r.Group("/api")
	api.Get("/moduledropdown", moduleCtl.Dropdown)
	api.Post("/createmodule", moduleCtl.Create)
	api.Put("/editmodule/:id", moduleCtl.Update)
	api.Post("/createsubmodule", submoduleCtl.Create)
	api.Put("/editsubmodule/:id", submoduleCtl.Update)
}
