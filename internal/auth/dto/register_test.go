package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	autherror "github.com/opengive/auth-service/internal/errors"
)

func validInput() RegisterInput {
	return RegisterInput{
		Email:           "a@x.com",
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
		FullName:        "Alice Example",
	}
}

func TestRegisterInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"valid", func(in *RegisterInput) {}, nil},
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"empty email", func(in *RegisterInput) { in.Email = "" }, ErrInvalidEmail},
		{"missing full name", func(in *RegisterInput) { in.FullName = "" }, ErrMissingFullName},
		{"too short", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "Ab1", "Ab1" }, ErrWeakPassword},
		{"no uppercase", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "abcdef12", "abcdef12" }, ErrWeakPassword},
		{"no lowercase", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "ABCDEF12", "ABCDEF12" }, ErrWeakPassword},
		{"no digit", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "Abcdefgh", "Abcdefgh" }, ErrWeakPassword},
		{"confirmation mismatch", func(in *RegisterInput) { in.ConfirmPassword = "Different1" }, autherror.ErrPasswordMismatch},
		{"unknown role", func(in *RegisterInput) { in.Role = "superuser" }, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterInput_Normalization(t *testing.T) {
	in := validInput()
	in.Email = "  Alice@Example.COM "

	assert.NoError(t, in.Validate())
	assert.Equal(t, "alice@example.com", in.Email)
	assert.Equal(t, "user", in.Role)
}

func TestRegisterInput_AdminRoleAccepted(t *testing.T) {
	in := validInput()
	in.Role = "admin"

	assert.NoError(t, in.Validate())
	assert.Equal(t, "admin", in.Role)
}
