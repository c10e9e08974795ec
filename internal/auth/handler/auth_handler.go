package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/opengive/auth-service/internal/auth/dto"
	"github.com/opengive/auth-service/internal/auth/service"
	autherror "github.com/opengive/auth-service/internal/errors"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Capture metadata for the audit trail.
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	claims, err := h.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}

	tokens, err := h.userService.Refresh(c.Context(), claims.Subject, input.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) SetupTwoFactor(c *fiber.Ctx) error {
	user := CurrentUser(c)

	out, err := h.userService.SetupTwoFactor(c.Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) EnableTwoFactor(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var input dto.TwoFactorCodeInput
	if err := c.BodyParser(&input); err != nil || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.EnableTwoFactor(c.Context(), user.ID, input.Code); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "two-factor authentication enabled"})
}

func (h *AuthHandler) DisableTwoFactor(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var input dto.TwoFactorCodeInput
	if err := c.BodyParser(&input); err != nil || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.userService.DisableTwoFactor(c.Context(), user.ID, input.Code); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "two-factor authentication disabled"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var input dto.LogoutInput
	// An empty body means logout everywhere.
	_ = c.BodyParser(&input)

	if err := h.userService.Logout(c.Context(), user.ID, input.RefreshToken); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	user := CurrentUser(c)

	if err := h.userService.LogoutAll(c.Context(), user.ID); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out from all devices"})
}

func (h *AuthHandler) GetLoginHistory(c *fiber.Ctx) error {
	user := CurrentUser(c)

	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.userService.GetLoginHistory(c.Context(), user.ID, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  records,
		"total": len(records),
	})
}

// writeError maps the service error taxonomy onto HTTP statuses. Messages
// stay stable and non-leaking; unexpected errors become an opaque 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidTwoFactorCode),
		errors.Is(err, autherror.ErrInvalidRefreshToken),
		errors.Is(err, autherror.ErrInvalidAccessToken),
		errors.Is(err, autherror.ErrSessionExpired),
		errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrAccountLocked),
		errors.Is(err, autherror.ErrAccountDisabled):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrPasswordMismatch),
		errors.Is(err, autherror.ErrTwoFactorSetupRequired),
		errors.Is(err, autherror.ErrTwoFactorNotEnabled),
		errors.Is(err, dto.ErrInvalidEmail),
		errors.Is(err, dto.ErrMissingFullName),
		errors.Is(err, dto.ErrWeakPassword),
		errors.Is(err, dto.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	default:
		slog.Error("request failed", "path", c.Path(), "error", err)
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
