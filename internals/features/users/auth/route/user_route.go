// file: internals/features/users/auth/route/user_route.go
package route

import (
	controller "modulku_backend/internals/features/users/auth/controller"
	helper "modulku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(r fiber.Router, v *validator.Validate, codes helper.StatusPolicy) {
	authController := controller.NewAuthController(v, codes)

	api := r.Group("/api")
	api.Post("/signup", authController.Signup)
}
