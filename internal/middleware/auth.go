package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/config"
	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/types"
)

// AuthAdmin requires an admin session. Admins manage listings and moderate
// tenant feedback.
func AuthAdmin(cfg *config.Config) fiber.Handler {
	return requireRoles(cfg, "listings.authorization.admin", "admin")
}

// AuthUser requires a regular user session.
func AuthUser(cfg *config.Config) fiber.Handler {
	return requireRoles(cfg, "listings.authorization.user", "user")
}

// requireRoles checks the Authorizer session cookie against the given roles
// and stashes the resolved user in context for the handler. The Authorizer
// client is created lazily on the first authenticated request, since the
// redirect URL depends on how the request reached us.
func requireRoles(cfg *config.Config, errorType string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return &types.CustomError{
					Code:    fiber.StatusServiceUnavailable,
					Message: fmt.Sprintf("Authorizer unavailable: %v", err),
					Type:    errorType,
				}
			}
		}

		session := c.Cookies("cookie_session")
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorizer cookie \"cookie_session\" not found",
				Type:    errorType,
			}
		}

		data, err := services.ValidateSession(session, roles)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    errorType,
			}
		}

		if user, ok := data["user"]; ok {
			c.Locals("user", user)
		}

		return c.Next()
	}
}
