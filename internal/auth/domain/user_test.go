package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Hour)

	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{"live", RefreshToken{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", RefreshToken{ExpiresAt: now.Add(-time.Second)}, false},
		{"expires exactly now", RefreshToken{ExpiresAt: now}, false},
		{"revoked", RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Valid(now))
		})
	}
}

func TestUser_Snapshot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := &User{
		ID:               "user-123",
		Email:            "a@x.com",
		PasswordHash:     "$2a$10$secret",
		FullName:         "Ada Lovelace",
		Role:             "user",
		IsActive:         true,
		TokenVersion:     4,
		TwoFactorEnabled: true,
		TwoFactorSecret:  "JBSWY3DPEHPK3PXP",
	}

	snapshot := user.Snapshot(now)
	assert.Equal(t, user.ID, snapshot.ID)
	assert.Equal(t, user.TokenVersion, snapshot.TokenVersion)
	assert.True(t, snapshot.TwoFactorEnabled)
	assert.Equal(t, now, snapshot.CachedAt)
}
