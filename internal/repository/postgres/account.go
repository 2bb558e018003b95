package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, email, password_hash, phone, creation_date, user_id, account_type`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Phone, &a.CreationDate, &a.UserID, &a.AccountType)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (email, password_hash, phone, creation_date, user_id, account_type)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Email, a.PasswordHash, a.Phone, a.CreationDate, a.UserID, a.AccountType).Scan(&a.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return a, err
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return a, err
}

func (r *accountRepository) ListAll(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
}

func (r *accountRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *accountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET email = $1, password_hash = $2, phone = $3, account_type = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, a.Email, a.PasswordHash, a.Phone, a.AccountType, a.ID)
	return err
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}
