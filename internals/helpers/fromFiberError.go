package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError renders an error that escaped a handler. A *fiber.Error keeps
// its code and message; anything else becomes a bare 500 so internal detail
// never reaches the client.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
