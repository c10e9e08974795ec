package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengive/auth-service/internal/auth/domain"
	autherror "github.com/opengive/auth-service/internal/errors"
)

func testUser() *domain.User {
	return &domain.User{
		ID:           "user-123",
		Email:        "a@x.com",
		Role:         "user",
		IsActive:     true,
		TokenVersion: 7,
	}
}

func TestNewTokenService_MissingSecrets(t *testing.T) {
	tests := []struct {
		name          string
		accessSecret  string
		refreshSecret string
		wantErr       bool
	}{
		{"both present", "access", "refresh", false},
		{"missing access", "", "refresh", true},
		{"missing refresh", "access", "", true},
		{"both missing", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTokenService(tt.accessSecret, tt.refreshSecret, 15, 1440)
			if tt.wantErr {
				assert.ErrorIs(t, err, autherror.ErrMissingSigningSecret)
				assert.Nil(t, ts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 15*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, 1440*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	ts, err := NewTokenService("access-secret", "refresh-secret", 15, 1440)
	require.NoError(t, err)

	user := testUser()
	access, refresh, refreshExpiresAt, err := ts.Generate(user)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)
	assert.WithinDuration(t, time.Now().Add(1440*time.Minute), refreshExpiresAt, 5*time.Second)

	accessClaims, err := ts.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.Subject)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, user.Role, accessClaims.Role)
	assert.Equal(t, user.TokenVersion, accessClaims.TokenVersion)

	refreshClaims, err := ts.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.Subject)
	assert.Equal(t, user.TokenVersion, refreshClaims.TokenVersion)
	// The refresh token deliberately carries no email or role.
}

func TestTokenService_DistinctSecrets(t *testing.T) {
	ts, err := NewTokenService("access-secret", "refresh-secret", 15, 1440)
	require.NoError(t, err)

	access, refresh, _, err := ts.Generate(testUser())
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa.
	_, err = ts.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, autherror.ErrInvalidAccessToken)

	_, err = ts.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestTokenService_ExpiredIsDistinguished(t *testing.T) {
	ts, err := NewTokenService("access-secret", "refresh-secret", 15, 1440)
	require.NoError(t, err)

	expired := AccessClaims{
		Email:        "a@x.com",
		TokenVersion: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, autherror.ErrSessionExpired)

	// Garbage is an invalid token, not an expired session.
	_, err = ts.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, autherror.ErrInvalidAccessToken)
}

type staticRepo struct {
	domain.UserRepository
	user *domain.User
}

func (r *staticRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func TestAccessValidator(t *testing.T) {
	ts, err := NewTokenService("access-secret", "refresh-secret", 15, 1440)
	require.NoError(t, err)
	ctx := context.Background()

	user := testUser()
	access, _, _, err := ts.Generate(user)
	require.NoError(t, err)

	t.Run("valid token and matching version", func(t *testing.T) {
		v := NewAccessValidator(ts, NewSnapshotSource(&staticRepo{user: user}, nil, time.Minute))

		authed, err := v.Validate(ctx, access)
		require.NoError(t, err)
		assert.Equal(t, user.ID, authed.ID)
		assert.Equal(t, user.Role, authed.Role)
	})

	t.Run("version mismatch rejects a cryptographically valid token", func(t *testing.T) {
		bumped := *user
		bumped.TokenVersion = user.TokenVersion + 1
		v := NewAccessValidator(ts, NewSnapshotSource(&staticRepo{user: &bumped}, nil, time.Minute))

		_, err := v.Validate(ctx, access)
		assert.ErrorIs(t, err, autherror.ErrSessionExpired)
	})

	t.Run("disabled account is rejected", func(t *testing.T) {
		disabled := *user
		disabled.IsActive = false
		v := NewAccessValidator(ts, NewSnapshotSource(&staticRepo{user: &disabled}, nil, time.Minute))

		_, err := v.Validate(ctx, access)
		assert.ErrorIs(t, err, autherror.ErrAccountDisabled)
	})

	t.Run("unknown subject is rejected", func(t *testing.T) {
		v := NewAccessValidator(ts, NewSnapshotSource(&staticRepo{}, nil, time.Minute))

		_, err := v.Validate(ctx, access)
		assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	})
}
