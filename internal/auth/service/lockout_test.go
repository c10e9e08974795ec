package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockoutGuard_Check(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	minutesAgo := func(m int) *time.Time {
		ts := now.Add(-time.Duration(m) * time.Minute)
		return &ts
	}

	guard := NewLockoutGuard(5, 30)

	tests := []struct {
		name           string
		failedAttempts int
		lastFailedAt   *time.Time
		wantLocked     bool
		wantRemaining  int
	}{
		{"no failures", 0, nil, false, 0},
		{"below threshold", 4, minutesAgo(1), false, 0},
		{"at threshold, just failed", 5, minutesAgo(0), true, 30},
		{"at threshold, mid window", 5, minutesAgo(10), true, 20},
		{"above threshold, mid window", 9, minutesAgo(29), true, 1},
		{"window elapsed", 5, minutesAgo(30), false, 0},
		{"window long elapsed", 5, minutesAgo(90), false, 0},
		{"threshold but no timestamp", 5, nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locked, remaining := guard.Check(tt.failedAttempts, tt.lastFailedAt, now)
			assert.Equal(t, tt.wantLocked, locked)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestLockoutGuard_RemainingRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	guard := NewLockoutGuard(5, 30)

	// 29m30s into the window: 30s left must surface as 1 minute, never 0.
	last := now.Add(-29*time.Minute - 30*time.Second)
	locked, remaining := guard.Check(5, &last, now)
	assert.True(t, locked)
	assert.Equal(t, 1, remaining)

	// 10m30s in: 19m30s left rounds up to 20.
	last = now.Add(-10*time.Minute - 30*time.Second)
	locked, remaining = guard.Check(5, &last, now)
	assert.True(t, locked)
	assert.Equal(t, 20, remaining)
}

func TestNewLockoutGuard_Defaults(t *testing.T) {
	guard := NewLockoutGuard(0, -1)
	assert.Equal(t, 5, guard.MaxFailedAttempts)
	assert.Equal(t, 30*time.Minute, guard.LockoutDuration)
}
