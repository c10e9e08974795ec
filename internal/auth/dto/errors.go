package dto

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMissingFullName = errors.New("full name is required")
	ErrWeakPassword    = errors.New("password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit")
	ErrInvalidRole     = errors.New("invalid role")
)
