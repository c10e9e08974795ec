package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// caller cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAccountLocked          = errors.New("account temporarily locked")
	ErrAccountDisabled        = errors.New("account has been disabled")
	ErrEmailAlreadyInUse      = errors.New("email already in use")
	ErrPasswordMismatch       = errors.New("password confirmation does not match")
	ErrInvalidTwoFactorCode   = errors.New("invalid two-factor code")
	ErrTwoFactorNotEnabled    = errors.New("two-factor authentication is not enabled")
	ErrTwoFactorSetupRequired = errors.New("two-factor setup required first")
	ErrInvalidRefreshToken    = errors.New("invalid or expired refresh token")
	ErrSessionExpired         = errors.New("session expired, please log in again")
	ErrInvalidAccessToken     = errors.New("invalid access token")
	ErrUserNotFound           = errors.New("user not found")

	// ErrMissingSigningSecret aborts token issuance rather than falling back to
	// a weak default secret.
	ErrMissingSigningSecret = errors.New("missing token signing secret")
)

// AccountLockedError carries the remaining wait time for the user-facing
// lockout message. It matches ErrAccountLocked under errors.Is.
type AccountLockedError struct {
	RemainingMinutes int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account temporarily locked, try again in %d minutes", e.RemainingMinutes)
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}
