package constant

const (
	DefaultUserRole = "user"
	AdminRole       = "admin"

	// Account lockout policy.
	MaxFailedAttempts      = 5
	LockoutDurationMinutes = 30

	// Work factor for bcrypt. Applies to passwords and refresh tokens alike.
	BcryptCost = 12

	// TOTP parameters. Skew of 2 tolerates ±2 time steps of clock drift.
	TOTPIssuer = "OpenGive"
	TOTPDigits = 6
	TOTPPeriod = 30
	TOTPSkew   = 2

	// Login history paging.
	DefaultLoginHistoryLimit = 10
	MaxLoginHistoryLimit     = 50
)
