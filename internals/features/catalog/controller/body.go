package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const msgInvalidBody = "Invalid request body"

// bindBody parses JSON or form bodies. An empty body leaves out
// untouched, so a bare PUT is a no-op update and a bare POST fails validation.
func bindBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	dropBlankFormFields(c)
	return c.BodyParser(out)
}

// dropBlankFormFields removes form fields that carry only empty values, so
// "status=" reads as not sent instead of decoding to 0. JSON bodies are left
// alone: there a missing field and null already mean "not sent".
func dropBlankFormFields(c *fiber.Ctx) {
	ctype := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm):
		args := c.Request().PostArgs()
		filled := map[string]bool{}
		args.VisitAll(func(k, v []byte) {
			key := string(k)
			filled[key] = filled[key] || len(v) > 0
		})
		for key, ok := range filled {
			if !ok {
				args.Del(key)
			}
		}

	case strings.HasPrefix(ctype, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			// BodyParser reports it
			return
		}
		for key, vals := range form.Value {
			kept := vals[:0]
			for _, v := range vals {
				if v != "" {
					kept = append(kept, v)
				}
			}
			if len(kept) == 0 {
				delete(form.Value, key)
			} else {
				form.Value[key] = kept
			}
		}
	}
}
