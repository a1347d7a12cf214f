package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/types"
)

// VersionMiddleware parses the X-Api-Version header, normalizes aliases, and
// stores the result in context. Requests pinned to a major version this
// server does not speak are rejected up front.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Support version aliases
		switch version {
		case "1", "1.0":
			version = "1.0.0"
		}

		if !strings.HasPrefix(version, "1.") {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unsupported API version %q", version),
				Type:    "listings.version",
			}
		}

		c.Locals("apiVersion", version)

		return c.Next()
	}
}
