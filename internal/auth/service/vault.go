package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/auth-service/internal/auth/domain"
)

// RefreshTokenVault persists refresh tokens as bcrypt hashes only. Because
// the hashes are salted there is no lookup-by-digest: matching a presented
// token means fetching every live record for the user and running the
// expensive compare against each. That linear scan is deliberate; it buys
// resistance to offline guessing at O(active sessions) verify cost.
type RefreshTokenVault struct {
	repo   domain.UserRepository
	hasher SecretHasher
}

func NewRefreshTokenVault(repo domain.UserRepository, hasher SecretHasher) *RefreshTokenVault {
	return &RefreshTokenVault{repo: repo, hasher: hasher}
}

// Store hashes the plaintext token and persists the record. The plaintext
// never reaches the repository.
func (v *RefreshTokenVault) Store(ctx context.Context, userID, plaintextToken string, expiresAt time.Time) error {
	tokenHash, err := v.hasher.Hash(plaintextToken)
	if err != nil {
		return err
	}

	return v.repo.CreateRefreshToken(ctx, &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
}

// FindValid returns the stored record matching the presented token, or nil
// when no live record matches.
func (v *RefreshTokenVault) FindValid(ctx context.Context, userID, plaintextToken string) (*domain.RefreshToken, error) {
	records, err := v.repo.ListValidRefreshTokens(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if v.hasher.Verify(plaintextToken, rec.TokenHash) {
			return rec, nil
		}
	}
	return nil, nil
}

// Revoke marks one record (by its stored hash) or, with an empty hash, every
// live record for the user. Revoking an already revoked record is a no-op,
// which is what makes the concurrent-rotation race benign.
func (v *RefreshTokenVault) Revoke(ctx context.Context, userID, tokenHash string) error {
	return v.repo.RevokeRefreshTokens(ctx, userID, tokenHash)
}
