package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opengive/auth-service/internal/auth/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client), mr
}

func sampleSnapshot() *domain.IdentitySnapshot {
	return &domain.IdentitySnapshot{
		ID:               "user-123",
		Email:            "a@x.com",
		FullName:         "Ada Lovelace",
		Role:             "user",
		IsActive:         true,
		IsVerified:       true,
		TokenVersion:     3,
		TwoFactorEnabled: false,
		CachedAt:         time.Now().UTC().Truncate(time.Second),
	}
}

func TestRedisCache_PutGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	snapshot := sampleSnapshot()
	require.NoError(t, c.Put(ctx, snapshot, time.Minute))

	got, err := c.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot.ID, got.ID)
	assert.Equal(t, snapshot.Email, got.Email)
	assert.Equal(t, snapshot.TokenVersion, got.TokenVersion)
	assert.True(t, got.IsActive)
}

func TestRedisCache_MissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	snapshot := sampleSnapshot()
	require.NoError(t, c.Put(ctx, snapshot, 30*time.Second))

	mr.FastForward(time.Minute)

	got, err := c.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	snapshot := sampleSnapshot()
	require.NoError(t, c.Put(ctx, snapshot, time.Minute))
	require.NoError(t, c.Invalidate(ctx, snapshot.ID))

	got, err := c.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Invalidating an absent key is not an error.
	assert.NoError(t, c.Invalidate(ctx, "never-cached"))
}

func TestRedisCache_CorruptEntryTreatedAsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:user-123", "{not json"))

	got, err := c.Get(ctx, "user-123")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The poisoned entry was cleared on read.
	assert.False(t, mr.Exists("user:user-123"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "user-123")
	assert.Error(t, err)

	assert.Error(t, c.Put(context.Background(), sampleSnapshot(), time.Minute))
}
