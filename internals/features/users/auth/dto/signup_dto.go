package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSignupFieldsRequired   = errors.New("signup: missing required field")
	ErrSignupPasswordMismatch = errors.New("signup: passwords do not match")
)

type SignupRequest struct {
	Email           string `json:"email"           form:"email"           validate:"required"`
	Password        string `json:"password"        form:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// Validate checks presence before the password match, so a missing field
// always wins over a mismatch.
func (r SignupRequest) Validate(v interface{ Struct(any) error }) error {
	err := v.Struct(r)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return ErrSignupFieldsRequired
		}
	}
	return ErrSignupPasswordMismatch
}
