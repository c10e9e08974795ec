package dto

type LoginInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
	IPAddress     string `json:"-"`
	UserAgent     string `json:"-"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse is either a token pair with the sanitized profile, or the
// intermediate requires_two_factor outcome with everything else empty.
type LoginResponse struct {
	RequiresTwoFactor bool        `json:"requires_two_factor,omitempty"`
	AccessToken       string      `json:"access_token,omitempty"`
	RefreshToken      string      `json:"refresh_token,omitempty"`
	User              *UserOutput `json:"user,omitempty"`
}
