package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/opengive/auth-service/internal/auth/service"
)

// RegisterRoutes mounts the authentication API. Public routes are listed
// explicitly; everything else runs behind the access-token middleware.
func RegisterRoutes(app *fiber.App, h *AuthHandler, validator *service.AccessValidator) {
	loginLimiter := NewLoginRateLimiter(10, time.Minute)

	api := app.Group("/api/v1/auth")

	// Public.
	api.Post("/register", h.Register)
	api.Post("/login", loginLimiter.Middleware(), h.Login)
	api.Post("/refresh", h.Refresh)

	// Authenticated.
	protected := api.Group("", RequireAuth(validator))
	protected.Post("/2fa/setup", h.SetupTwoFactor)
	protected.Post("/2fa/enable", h.EnableTwoFactor)
	protected.Post("/2fa/disable", h.DisableTwoFactor)
	protected.Post("/logout", h.Logout)
	protected.Post("/logout-all", h.LogoutAll)
	protected.Get("/login-history", h.GetLoginHistory)
}
