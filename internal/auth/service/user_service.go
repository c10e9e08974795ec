package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/auth-service/internal/auth/domain"
	"github.com/opengive/auth-service/internal/auth/dto"
	autherror "github.com/opengive/auth-service/internal/errors"
	"github.com/opengive/auth-service/internal/notification"
	"github.com/opengive/auth-service/pkg/constant"
)

// UserService orchestrates the register, login, refresh, two-factor and
// logout flows over the component parts: lockout guard, secret hasher,
// two-factor engine, token generator, refresh-token vault, login auditor
// and the identity snapshot cache.
type UserService struct {
	repo       domain.UserRepository
	tokens     TokenGenerator
	hasher     SecretHasher
	twoFactor  TwoFactorEngine
	qrRenderer CodeImageRenderer
	vault      *RefreshTokenVault
	auditor    *LoginAuditor
	lockout    *LockoutGuard
	snapshots  *SnapshotSource
	notifier   notification.Notifier
}

func NewUserService(
	repo domain.UserRepository,
	tokens TokenGenerator,
	hasher SecretHasher,
	twoFactor TwoFactorEngine,
	qrRenderer CodeImageRenderer,
	vault *RefreshTokenVault,
	auditor *LoginAuditor,
	lockout *LockoutGuard,
	snapshots *SnapshotSource,
	notifier notification.Notifier,
) *UserService {
	return &UserService{
		repo:       repo,
		tokens:     tokens,
		hasher:     hasher,
		twoFactor:  twoFactor,
		qrRenderer: qrRenderer,
		vault:      vault,
		auditor:    auditor,
		lockout:    lockout,
		snapshots:  snapshots,
		notifier:   notifier,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	notification.SendAsync(s.notifier, user.Email, "Welcome to OpenGive",
		fmt.Sprintf("Hi %s, your account has been created.", user.FullName))

	return dto.NewUserOutput(user), nil
}

// Login runs the credential check state machine: lookup, lockout, active,
// password, two-factor, token issue, audit. Unknown email and wrong password
// fail identically so the caller cannot tell which part was wrong.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if locked, remaining := s.lockout.Check(user.FailedAttempts, user.LastFailedAt, time.Now()); locked {
		s.auditor.Record(ctx, user.ID, input.IPAddress, input.UserAgent, false)
		slog.Warn("login refused, account locked", "user_id", user.ID, "remaining_minutes", remaining)
		return nil, &autherror.AccountLockedError{RemainingMinutes: remaining}
	}

	if !user.IsActive {
		slog.Warn("login refused, account disabled", "user_id", user.ID)
		return nil, autherror.ErrAccountDisabled
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		if err := s.repo.IncrementFailedAttempts(ctx, user.ID); err != nil {
			slog.Error("failed to increment failed attempts", "user_id", user.ID, "error", err)
		}
		s.auditor.Record(ctx, user.ID, input.IPAddress, input.UserAgent, false)
		return nil, autherror.ErrInvalidCredentials
	}

	if user.TwoFactorEnabled && user.TwoFactorSecret != "" {
		if input.TwoFactorCode == "" {
			// Not a failure: the caller re-submits with a code.
			return &dto.LoginResponse{RequiresTwoFactor: true}, nil
		}
		if !s.twoFactor.Verify(user.TwoFactorSecret, input.TwoFactorCode) {
			s.auditor.Record(ctx, user.ID, input.IPAddress, input.UserAgent, false)
			return nil, autherror.ErrInvalidTwoFactorCode
		}
	}

	// Success path: reset failed attempts and bump token_version atomically.
	updated, err := s.repo.UpdateLoginSuccess(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, refreshExpiresAt, err := s.tokens.Generate(updated)
	if err != nil {
		return nil, err
	}

	if err := s.vault.Store(ctx, updated.ID, refreshToken, refreshExpiresAt); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, updated.ID, input.IPAddress, input.UserAgent, true)
	s.snapshots.Invalidate(ctx, updated.ID)

	slog.Info("login successful", "user_id", updated.ID)

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserOutput(updated),
	}, nil
}

// Refresh rotates the presented refresh token: the matched record is revoked
// and a new pair bound to the account's current token_version is issued.
// Replaying an already rotated token fails. Two concurrent rotations of the
// same token may both succeed; the second revoke is then a no-op.
func (s *UserService) Refresh(ctx context.Context, userID, refreshToken string) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidRefreshToken
	}
	if !user.IsActive {
		return nil, autherror.ErrAccountDisabled
	}

	matched, err := s.vault.FindValid(ctx, userID, refreshToken)
	if err != nil {
		return nil, err
	}
	if matched == nil {
		slog.Warn("refresh with unknown or revoked token", "user_id", userID)
		return nil, autherror.ErrInvalidRefreshToken
	}

	accessToken, newRefreshToken, refreshExpiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	if err := s.vault.Revoke(ctx, userID, matched.TokenHash); err != nil {
		return nil, err
	}
	if err := s.vault.Store(ctx, userID, newRefreshToken, refreshExpiresAt); err != nil {
		return nil, err
	}

	s.snapshots.Invalidate(ctx, userID)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// SetupTwoFactor generates a fresh shared secret and stores it as pending.
// The secret grants nothing until EnableTwoFactor confirms it with a valid
// code.
func (s *UserService) SetupTwoFactor(ctx context.Context, userID string) (*dto.TwoFactorSetupOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	secret, provisioningURI, err := s.twoFactor.Enroll(user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetTwoFactorSecret(ctx, userID, secret); err != nil {
		return nil, err
	}
	s.snapshots.Invalidate(ctx, userID)

	out := &dto.TwoFactorSetupOutput{
		Secret:          secret,
		ProvisioningURI: provisioningURI,
	}

	if s.qrRenderer != nil {
		qr, err := s.qrRenderer.Render(provisioningURI)
		if err != nil {
			slog.Error("failed to render provisioning QR code", "user_id", userID, "error", err)
		} else {
			out.QRCode = qr
		}
	}

	return out, nil
}

func (s *UserService) EnableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if user.TwoFactorSecret == "" {
		return autherror.ErrTwoFactorSetupRequired
	}

	if !s.twoFactor.Verify(user.TwoFactorSecret, code) {
		return autherror.ErrInvalidTwoFactorCode
	}

	if err := s.repo.EnableTwoFactor(ctx, userID); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx, userID)

	slog.Info("two-factor authentication enabled", "user_id", userID)
	return nil
}

// DisableTwoFactor requires a valid current code before erasing the secret,
// so a stolen session alone cannot silently downgrade account security.
func (s *UserService) DisableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if !user.TwoFactorEnabled || user.TwoFactorSecret == "" {
		return autherror.ErrTwoFactorNotEnabled
	}

	if !s.twoFactor.Verify(user.TwoFactorSecret, code) {
		slog.Warn("invalid code during two-factor disable", "user_id", userID)
		return autherror.ErrInvalidTwoFactorCode
	}

	if err := s.repo.DisableTwoFactor(ctx, userID); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx, userID)

	slog.Info("two-factor authentication disabled", "user_id", userID)
	return nil
}

// Logout revokes the session matching the presented refresh token, or every
// session when no token is given.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken == "" {
		return s.LogoutAll(ctx, userID)
	}

	matched, err := s.vault.FindValid(ctx, userID, refreshToken)
	if err != nil {
		return err
	}
	if matched == nil {
		// Already revoked or never issued; logout is idempotent.
		return nil
	}
	return s.vault.Revoke(ctx, userID, matched.TokenHash)
}

// LogoutAll revokes every valid refresh token for the user. Outstanding
// access tokens die with the next validation once the cache entry is gone
// and their version no longer matches.
func (s *UserService) LogoutAll(ctx context.Context, userID string) error {
	if err := s.vault.Revoke(ctx, userID, ""); err != nil {
		return err
	}
	s.snapshots.Invalidate(ctx, userID)
	slog.Info("all sessions revoked", "user_id", userID)
	return nil
}

func (s *UserService) GetLoginHistory(ctx context.Context, userID string, limit int) ([]dto.LoginHistoryOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if limit <= 0 {
		limit = constant.DefaultLoginHistoryLimit
	}
	if limit > constant.MaxLoginHistoryLimit {
		limit = constant.MaxLoginHistoryLimit
	}

	records, err := s.repo.ListLoginHistory(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewLoginHistoryOutput(records), nil
}
