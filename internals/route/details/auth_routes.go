package details

import (
	authRoute "modulku_backend/internals/features/users/auth/route"
	helper "modulku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, v *validator.Validate, codes helper.StatusPolicy) {

	authRoute.AuthRoutes(app, v, codes)

}
