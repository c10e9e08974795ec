package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/opengive/auth-service/internal/auth/domain"
	autherror "github.com/opengive/auth-service/internal/errors"
)

// SnapshotSource is the read-through path for identity trust snapshots:
// cache first, repository on miss, repopulate on the way out. Cache failures
// degrade to direct repository reads and are never surfaced as authorization
// decisions.
type SnapshotSource struct {
	repo  domain.UserRepository
	cache domain.IdentityCache
	ttl   time.Duration
}

func NewSnapshotSource(repo domain.UserRepository, cache domain.IdentityCache, ttl time.Duration) *SnapshotSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotSource{repo: repo, cache: cache, ttl: ttl}
}

func (s *SnapshotSource) Get(ctx context.Context, userID string) (*domain.IdentitySnapshot, error) {
	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx, userID)
		if err != nil {
			slog.Warn("identity cache read failed, falling back to store", "user_id", userID, "error", err)
		} else if snapshot != nil {
			return snapshot, nil
		}
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	snapshot := user.Snapshot(time.Now())
	if s.cache != nil {
		if err := s.cache.Put(ctx, snapshot, s.ttl); err != nil {
			slog.Warn("identity cache write failed", "user_id", userID, "error", err)
		}
	}
	return snapshot, nil
}

// Invalidate drops the cached snapshot so the next validation sees fresh
// trust state. It is called synchronously by every state-changing operation
// before that operation reports success.
func (s *SnapshotSource) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		slog.Error("identity cache invalidation failed", "user_id", userID, "error", err)
	}
}
