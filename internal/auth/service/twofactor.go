package service

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"log/slog"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/opengive/auth-service/pkg/constant"
)

// TwoFactorEngine generates and verifies time-based one-time codes bound to
// an account label.
type TwoFactorEngine interface {
	// Enroll returns a fresh shared secret and an otpauth provisioning URI
	// an authenticator app can import.
	Enroll(accountLabel string) (secret, provisioningURI string, err error)
	Verify(secret, code string) bool
}

type TOTPEngine struct {
	issuer string
}

func NewTOTPEngine(issuer string) *TOTPEngine {
	if issuer == "" {
		issuer = constant.TOTPIssuer
	}
	return &TOTPEngine{issuer: issuer}
}

func (e *TOTPEngine) Enroll(accountLabel string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: accountLabel,
		Period:      constant.TOTPPeriod,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		slog.Error("failed to generate totp secret", "account", accountLabel, "error", err)
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// Verify checks a 6-digit code against the secret, tolerating ±2 time steps
// of clock drift so codes near a step boundary are not falsely rejected.
func (e *TOTPEngine) Verify(secret, code string) bool {
	valid, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    constant.TOTPPeriod,
		Skew:      constant.TOTPSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		slog.Error("failed to validate totp code", "error", err)
		return false
	}
	return valid
}

// CodeImageRenderer turns a provisioning URI into a displayable image.
// Rendering failures must never block secret generation.
type CodeImageRenderer interface {
	Render(provisioningURI string) (string, error)
}

// QRCodeRenderer renders an otpauth URI as a PNG data URL.
type QRCodeRenderer struct {
	Size int
}

func NewQRCodeRenderer() *QRCodeRenderer {
	return &QRCodeRenderer{Size: 200}
}

func (r *QRCodeRenderer) Render(provisioningURI string) (string, error) {
	key, err := otp.NewKeyFromURL(provisioningURI)
	if err != nil {
		return "", err
	}

	img, err := key.Image(r.Size, r.Size)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
