package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/opengive/auth-service/internal/auth/domain"
)

// DBTX is the slice of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, COALESCE(phone, ''), role,
		is_active, is_verified, failed_attempts, last_failed_at, last_login_at,
		token_version, two_factor_enabled, COALESCE(two_factor_secret, ''),
		created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.Role,
		&user.IsActive, &user.IsVerified, &user.FailedAttempts, &user.LastFailedAt, &user.LastLoginAt,
		&user.TokenVersion, &user.TwoFactorEnabled, &user.TwoFactorSecret,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1;`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1;`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, phone, role,
			is_active, is_verified, failed_attempts, token_version, two_factor_enabled,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, 0, 0, false, $9, $10)
	`, user.ID, user.Email, user.PasswordHash, user.FullName, user.Phone, user.Role,
		user.IsActive, user.IsVerified, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateLoginSuccess resets the failed-attempt state and bumps token_version
// as a single atomic statement, so concurrent logins cannot lose the bump.
func (r *PostgresRepository) UpdateLoginSuccess(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET failed_attempts = 0,
			last_failed_at = NULL,
			last_login_at = now(),
			token_version = token_version + 1,
			updated_at = now()
		WHERE id = $1
		RETURNING %s;`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) IncrementFailedAttempts(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_attempts = failed_attempts + 1,
			last_failed_at = now(),
			updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to increment failed attempts: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetTwoFactorSecret(ctx context.Context, id, secret string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET two_factor_secret = NULLIF($2, ''), updated_at = now() WHERE id = $1
	`, id, secret)
	if err != nil {
		return fmt.Errorf("failed to set two-factor secret: %w", err)
	}
	return nil
}

func (r *PostgresRepository) EnableTwoFactor(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET two_factor_enabled = true, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to enable two-factor: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DisableTwoFactor(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET two_factor_enabled = false, two_factor_secret = NULL, updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to disable two-factor: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rt.ID, rt.UserID, rt.TokenHash, rt.ExpiresAt, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListValidRefreshTokens(ctx context.Context, userID string) ([]*domain.RefreshToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > now()
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*domain.RefreshToken
	for rows.Next() {
		var rt domain.RefreshToken
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.TokenHash, &rt.ExpiresAt, &rt.RevokedAt, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan refresh token: %w", err)
		}
		tokens = append(tokens, &rt)
	}
	return tokens, rows.Err()
}

// RevokeRefreshTokens marks tokens revoked without deleting them. The
// revoked_at IS NULL guard makes re-revocation a no-op.
func (r *PostgresRepository) RevokeRefreshTokens(ctx context.Context, userID, tokenHash string) error {
	var err error
	if tokenHash == "" {
		_, err = r.db.Exec(ctx, `
			UPDATE refresh_tokens SET revoked_at = now()
			WHERE user_id = $1 AND revoked_at IS NULL
		`, userID)
	} else {
		_, err = r.db.Exec(ctx, `
			UPDATE refresh_tokens SET revoked_at = now()
			WHERE user_id = $1 AND token_hash = $2 AND revoked_at IS NULL
		`, userID, tokenHash)
	}
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (r *PostgresRepository) AppendLoginHistory(ctx context.Context, rec *domain.LoginRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_login_history (id, user_id, ip_address, user_agent, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.UserID, rec.IPAddress, rec.UserAgent, rec.Success, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append login history: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListLoginHistory(ctx context.Context, userID string, limit int) ([]*domain.LoginRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, ip_address, user_agent, success, created_at
		FROM user_login_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list login history: %w", err)
	}
	defer rows.Close()

	var records []*domain.LoginRecord
	for rows.Next() {
		var rec domain.LoginRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.IPAddress, &rec.UserAgent, &rec.Success, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan login record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
