package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/opengive/auth-service/internal/auth/domain UserRepository

// UserRepository is the narrow gateway over identity, refresh-token and
// login-history records. Counter updates (failed attempts, token version)
// are atomic increments at the store layer so concurrent logins against the
// same account cannot lose updates.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error

	// UpdateLoginSuccess resets the failed-attempt state and bumps
	// token_version by one, returning the user as updated.
	UpdateLoginSuccess(ctx context.Context, id string) (*User, error)
	IncrementFailedAttempts(ctx context.Context, id string) error

	SetTwoFactorSecret(ctx context.Context, id, secret string) error
	EnableTwoFactor(ctx context.Context, id string) error
	DisableTwoFactor(ctx context.Context, id string) error

	CreateRefreshToken(ctx context.Context, rt *RefreshToken) error
	ListValidRefreshTokens(ctx context.Context, userID string) ([]*RefreshToken, error)
	// RevokeRefreshTokens marks records revoked. An empty tokenHash revokes
	// every currently valid token for the user; revoking an already revoked
	// record is a no-op.
	RevokeRefreshTokens(ctx context.Context, userID, tokenHash string) error

	AppendLoginHistory(ctx context.Context, rec *LoginRecord) error
	ListLoginHistory(ctx context.Context, userID string, limit int) ([]*LoginRecord, error)
}

// IdentityCache holds ephemeral snapshots of user trust state. A miss or a
// cache failure is never an authorization decision; callers fall back to the
// repository.
type IdentityCache interface {
	Get(ctx context.Context, userID string) (*IdentitySnapshot, error)
	Put(ctx context.Context, snapshot *IdentitySnapshot, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}
