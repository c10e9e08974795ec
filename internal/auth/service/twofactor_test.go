package service

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPEngine_EnrollAndVerify(t *testing.T) {
	engine := NewTOTPEngine("OpenGive")

	secret, uri, err := engine.Enroll("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
	assert.Contains(t, uri, "OpenGive")

	code, err := totp.GenerateCode(secret, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, engine.Verify(secret, code))

	assert.False(t, engine.Verify(secret, "000000"))
	assert.False(t, engine.Verify(secret, ""))
}

func TestTOTPEngine_SkewTolerance(t *testing.T) {
	engine := NewTOTPEngine("OpenGive")

	secret, _, err := engine.Enroll("user@example.com")
	require.NoError(t, err)

	now := time.Now().UTC()

	// Codes from the adjacent time steps still pass; codes from far outside
	// the skew window do not.
	previous, err := totp.GenerateCode(secret, now.Add(-30*time.Second))
	require.NoError(t, err)
	assert.True(t, engine.Verify(secret, previous))

	next, err := totp.GenerateCode(secret, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.True(t, engine.Verify(secret, next))

	stale, err := totp.GenerateCode(secret, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.False(t, engine.Verify(secret, stale))
}

func TestTOTPEngine_DefaultIssuer(t *testing.T) {
	engine := NewTOTPEngine("")

	_, uri, err := engine.Enroll("user@example.com")
	require.NoError(t, err)
	assert.Contains(t, uri, "OpenGive")
}

func TestQRCodeRenderer(t *testing.T) {
	engine := NewTOTPEngine("OpenGive")
	renderer := NewQRCodeRenderer()

	_, uri, err := engine.Enroll("user@example.com")
	require.NoError(t, err)

	dataURL, err := renderer.Render(uri)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	_, err = renderer.Render("::not-a-uri")
	assert.Error(t, err)
}

func TestQRCodeRenderer_SizeIsConfigurable(t *testing.T) {
	renderer := NewQRCodeRenderer()
	assert.Equal(t, 200, renderer.Size)
}

// Guards against engine/library drift: the engine must accept codes produced
// with the library defaults our provisioning URI advertises.
func TestTOTPEngine_MatchesAdvertisedParameters(t *testing.T) {
	engine := NewTOTPEngine("OpenGive")

	_, uri, err := engine.Enroll("user@example.com")
	require.NoError(t, err)

	key, err := otp.NewKeyFromURL(uri)
	require.NoError(t, err)
	assert.Equal(t, "OpenGive", key.Issuer())
	assert.Equal(t, uint64(30), key.Period())
	assert.Equal(t, otp.DigitsSix, key.Digits())
}
