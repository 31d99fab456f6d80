package controller

import (
	"errors"
	"log"

	authDTO "modulku_backend/internals/features/users/auth/dto"
	helper "modulku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Validator interface{ Struct(any) error }
	Codes     helper.StatusPolicy
}

func NewAuthController(v interface{ Struct(any) error }, codes helper.StatusPolicy) *AuthController {
	return &AuthController{Validator: v, Codes: codes}
}

// POST /api/signup — validates the form only, no account is stored
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input authDTO.SignupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return helper.JsonError(c, ac.Codes.BadBody, "Invalid request body")
		}
	}

	switch err := input.Validate(ac.Validator); {
	case errors.Is(err, authDTO.ErrSignupFieldsRequired):
		return helper.JsonError(c, ac.Codes.MissingField, "All fields are required")
	case errors.Is(err, authDTO.ErrSignupPasswordMismatch):
		return helper.JsonError(c, ac.Codes.MissingField, "Password and confirm password should match")
	case err != nil:
		log.Printf("[AUTH][SIGNUP] ❌ validate: %v", err)
		return helper.JsonError(c, ac.Codes.Internal, "Error in signup")
	}

	return helper.JsonMessage(c, "Signup successfull")
}
