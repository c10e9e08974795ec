package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/auth-service/internal/auth/domain"
)

// LoginAuditor appends immutable login-attempt records. A failed write is
// logged and swallowed; auditing must never abort an authentication flow.
type LoginAuditor struct {
	repo domain.UserRepository
}

func NewLoginAuditor(repo domain.UserRepository) *LoginAuditor {
	return &LoginAuditor{repo: repo}
}

func (a *LoginAuditor) Record(ctx context.Context, userID, ipAddress, userAgent string, success bool) {
	if ipAddress == "" {
		ipAddress = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}

	err := a.repo.AppendLoginHistory(ctx, &domain.LoginRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Success:   success,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to record login attempt", "user_id", userID, "success", success, "error", err)
	}
}
