package service

import (
	"math"
	"time"

	"github.com/opengive/auth-service/pkg/constant"
)

// LockoutGuard decides whether an account is currently locked out from its
// failed-attempt history alone. It holds no state of its own.
type LockoutGuard struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

func NewLockoutGuard(maxFailedAttempts, lockoutMinutes int) *LockoutGuard {
	if maxFailedAttempts <= 0 {
		maxFailedAttempts = constant.MaxFailedAttempts
	}
	if lockoutMinutes <= 0 {
		lockoutMinutes = constant.LockoutDurationMinutes
	}
	return &LockoutGuard{
		MaxFailedAttempts: maxFailedAttempts,
		LockoutDuration:   time.Duration(lockoutMinutes) * time.Minute,
	}
}

// Check returns locked=true with the remaining wait in whole minutes
// (rounded up, for the user-facing message) when the account has reached the
// attempt threshold and the lockout window has not yet elapsed.
func (g *LockoutGuard) Check(failedAttempts int, lastFailedAt *time.Time, now time.Time) (locked bool, remainingMinutes int) {
	if failedAttempts < g.MaxFailedAttempts || lastFailedAt == nil {
		return false, 0
	}

	lockoutEnd := lastFailedAt.Add(g.LockoutDuration)
	if !now.Before(lockoutEnd) {
		return false, 0
	}

	remaining := int(math.Ceil(lockoutEnd.Sub(now).Minutes()))
	if remaining < 1 {
		remaining = 1
	}
	return true, remaining
}
