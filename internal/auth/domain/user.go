package domain

import "time"

type User struct {
	ID               string
	Email            string
	PasswordHash     string
	FullName         string
	Phone            string
	Role             string
	IsActive         bool
	IsVerified       bool
	FailedAttempts   int
	LastFailedAt     *time.Time
	LastLoginAt      *time.Time
	TokenVersion     int
	TwoFactorEnabled bool
	TwoFactorSecret  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RefreshToken holds only the bcrypt hash of an issued refresh token; the
// plaintext is never persisted.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Valid reports whether the record is usable at the given instant.
func (rt *RefreshToken) Valid(now time.Time) bool {
	return rt.RevokedAt == nil && rt.ExpiresAt.After(now)
}

// LoginRecord is an append-only audit entry. It is never updated or deleted.
type LoginRecord struct {
	ID        string
	UserID    string
	IPAddress string
	UserAgent string
	Success   bool
	CreatedAt time.Time
}

// IdentitySnapshot is the cached projection of a user's trust-relevant
// fields. It is never authoritative: any mutation of the underlying user
// must invalidate it.
type IdentitySnapshot struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role"`
	IsActive         bool      `json:"is_active"`
	IsVerified       bool      `json:"is_verified"`
	TokenVersion     int       `json:"token_version"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CachedAt         time.Time `json:"cached_at"`
}

// Snapshot projects the trust-relevant fields of a user.
func (u *User) Snapshot(now time.Time) *IdentitySnapshot {
	return &IdentitySnapshot{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		Role:             u.Role,
		IsActive:         u.IsActive,
		IsVerified:       u.IsVerified,
		TokenVersion:     u.TokenVersion,
		TwoFactorEnabled: u.TwoFactorEnabled,
		CachedAt:         now,
	}
}
