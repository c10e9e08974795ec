package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/opengive/auth-service/internal/auth/service"
)

const authUserKey = "auth_user"

// RequireAuth validates the bearer access token and attaches the resolved
// user to the request context. Validation includes the token_version check
// against the current identity snapshot, so revoked sessions are rejected
// even with a cryptographically valid token.
func RequireAuth(validator *service.AccessValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		user, err := validator.Validate(c.Context(), token)
		if err != nil {
			return writeError(c, err)
		}

		c.Locals(authUserKey, user)
		return c.Next()
	}
}

// RequireRole guards a route behind a role. It must run after RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth, or nil
// on public routes.
func CurrentUser(c *fiber.Ctx) *service.AuthenticatedUser {
	user, _ := c.Locals(authUserKey).(*service.AuthenticatedUser)
	return user
}
