package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/opengive/auth-service/internal/auth/service TokenGenerator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opengive/auth-service/internal/auth/domain"
	autherror "github.com/opengive/auth-service/internal/errors"
)

// TokenGenerator mints and verifies the paired access/refresh tokens. Both
// carry the subject id and the account's token_version; the access token
// additionally carries role and email for downstream authorization, the
// refresh token nothing more, to minimize blast radius if it leaks.
type TokenGenerator interface {
	Generate(user *domain.User) (accessToken, refreshToken string, refreshExpiresAt time.Time, err error)
	VerifyAccessToken(tokenString string) (*AccessClaims, error)
	VerifyRefreshToken(tokenString string) (*RefreshClaims, error)
	GetRefreshTokenExpiry() time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"version"`
}

type RefreshClaims struct {
	jwt.RegisteredClaims
	TokenVersion int `json:"version"`
}

// TokenService signs access and refresh tokens with distinct secrets so that
// compromise of one does not compromise the other.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// NewTokenService fails loudly when either signing secret is absent; signing
// with a default value is never acceptable.
func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) (*TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, autherror.ErrMissingSigningSecret
	}
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}, nil
}

func (ts *TokenService) Generate(user *domain.User) (string, string, time.Time, error) {
	now := time.Now()
	refreshExpiresAt := now.Add(ts.RefreshTokenExpiry)

	accessClaims := AccessClaims{
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshClaims := RefreshClaims{
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		refreshClaims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, refreshExpiresAt, nil
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}

// VerifyAccessToken checks signature and expiry only; no I/O. An expired
// token is reported distinctly so the caller can show a specific
// expired-session message.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := ts.parse(tokenString, claims, ts.AccessTokenSecret); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrSessionExpired
		}
		return nil, autherror.ErrInvalidAccessToken
	}
	return claims, nil
}

func (ts *TokenService) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := ts.parse(tokenString, claims, ts.RefreshTokenSecret); err != nil {
		return nil, autherror.ErrInvalidRefreshToken
	}
	return claims, nil
}

func (ts *TokenService) parse(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

// AuthenticatedUser is the typed context attached to a request after access
// token validation.
type AuthenticatedUser struct {
	ID         string
	Email      string
	FullName   string
	Role       string
	IsVerified bool
}

// AccessValidator resolves an access token all the way to a trusted user:
// signature and expiry first (fast fail, no I/O), then the current trust
// snapshot. A token whose embedded version no longer matches the account's
// token_version is rejected even when cryptographically valid.
type AccessValidator struct {
	tokens    TokenGenerator
	snapshots *SnapshotSource
}

func NewAccessValidator(tokens TokenGenerator, snapshots *SnapshotSource) *AccessValidator {
	return &AccessValidator{tokens: tokens, snapshots: snapshots}
}

func (v *AccessValidator) Validate(ctx context.Context, tokenString string) (*AuthenticatedUser, error) {
	claims, err := v.tokens.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, autherror.ErrInvalidAccessToken
	}

	snapshot, err := v.snapshots.Get(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	if !snapshot.IsActive {
		return nil, autherror.ErrAccountDisabled
	}
	if snapshot.TokenVersion != claims.TokenVersion {
		return nil, autherror.ErrSessionExpired
	}

	return &AuthenticatedUser{
		ID:         snapshot.ID,
		Email:      snapshot.Email,
		FullName:   snapshot.FullName,
		Role:       snapshot.Role,
		IsVerified: snapshot.IsVerified,
	}, nil
}
