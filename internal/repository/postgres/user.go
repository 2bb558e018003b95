package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, date_of_birth, place_of_birth, street, postal_code, city, country_code`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.DateOfBirth, &u.PlaceOfBirth,
		&u.Street, &u.PostalCode, &u.City, &u.CountryCode)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, date_of_birth, place_of_birth, street, postal_code, city, country_code)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.DateOfBirth, u.PlaceOfBirth,
		u.Street, u.PostalCode, u.City, u.CountryCode).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return u, err
}

func (r *userRepository) FindMatch(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
	          WHERE first_name = $1 AND last_name = $2 AND date_of_birth = $3 AND place_of_birth = $4
	            AND street = $5 AND postal_code = $6 AND city = $7 AND country_code = $8
	          LIMIT 1`
	found, err := scanUser(r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.DateOfBirth,
		u.PlaceOfBirth, u.Street, u.PostalCode, u.City, u.CountryCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return found, err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
