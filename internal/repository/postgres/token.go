package postgres

import (
	"context"
	"database/sql"

	"fastlane-backend/internal/repository"
)

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Save(ctx context.Context, token string, accountID int64) error {
	query := `INSERT INTO access_tokens (token, account_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, token, accountID)
	return err
}

func (r *tokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE access_tokens SET revoked = TRUE WHERE token = $1`, token)
	return err
}

func (r *tokenRepository) IsActive(ctx context.Context, token string) (bool, error) {
	var active bool
	query := `SELECT EXISTS (SELECT 1 FROM access_tokens WHERE token = $1 AND NOT revoked)`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&active)
	return active, err
}
