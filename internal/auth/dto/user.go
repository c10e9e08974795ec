package dto

import (
	"time"

	"github.com/opengive/auth-service/internal/auth/domain"
)

// UserOutput is the sanitized profile returned to callers. It never carries
// the password hash, the 2FA secret or any token material.
type UserOutput struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role"`
	IsVerified       bool      `json:"is_verified"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		Role:             u.Role,
		IsVerified:       u.IsVerified,
		TwoFactorEnabled: u.TwoFactorEnabled,
		CreatedAt:        u.CreatedAt,
	}
}

type LoginHistoryOutput struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLoginHistoryOutput(records []*domain.LoginRecord) []LoginHistoryOutput {
	out := make([]LoginHistoryOutput, 0, len(records))
	for _, r := range records {
		out = append(out, LoginHistoryOutput{
			ID:        r.ID,
			IPAddress: r.IPAddress,
			UserAgent: r.UserAgent,
			Success:   r.Success,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
