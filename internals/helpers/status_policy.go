package helper

import (
	"github.com/gofiber/fiber/v2"

	"modulku_backend/internals/configs"
)

// StatusPolicy maps failure kinds to HTTP status codes. The legacy table keeps
// the codes existing clients already branch on; the rest table uses the
// conventional ones.
type StatusPolicy struct {
	MissingField int
	InvalidInput int
	Duplicate    int
	NotFound     int
	BadBody      int
	Internal     int
}

var (
	LegacyStatusPolicy = StatusPolicy{
		MissingField: fiber.StatusNotFound,
		InvalidInput: fiber.StatusPaymentRequired,
		Duplicate:    fiber.StatusNotFound,
		NotFound:     fiber.StatusForbidden,
		BadBody:      fiber.StatusBadRequest,
		Internal:     fiber.StatusInternalServerError,
	}

	RESTStatusPolicy = StatusPolicy{
		MissingField: fiber.StatusBadRequest,
		InvalidInput: fiber.StatusBadRequest,
		Duplicate:    fiber.StatusConflict,
		NotFound:     fiber.StatusNotFound,
		BadBody:      fiber.StatusBadRequest,
		Internal:     fiber.StatusInternalServerError,
	}
)

// PolicyFor returns the table for a configs.StatusMode* value; unknown modes
// get the legacy table.
func PolicyFor(mode string) StatusPolicy {
	if mode == configs.StatusModeREST {
		return RESTStatusPolicy
	}
	return LegacyStatusPolicy
}
