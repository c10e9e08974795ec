package dto

import (
	"net/mail"
	"strings"
	"unicode"

	autherror "github.com/opengive/auth-service/internal/errors"
	"github.com/opengive/auth-service/pkg/constant"
)

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
}

// Validate normalizes and checks the registration payload: well-formed email,
// minimum 8 characters with upper, lower and digit, matching confirmation,
// and a known role.
func (in *RegisterInput) Validate() error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ErrInvalidEmail
	}
	if in.FullName == "" {
		return ErrMissingFullName
	}
	if err := checkPasswordStrength(in.Password); err != nil {
		return err
	}
	if in.Password != in.ConfirmPassword {
		return autherror.ErrPasswordMismatch
	}

	if in.Role == "" {
		in.Role = constant.DefaultUserRole
	}
	if in.Role != constant.DefaultUserRole && in.Role != constant.AdminRole {
		return ErrInvalidRole
	}

	return nil
}

func checkPasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
