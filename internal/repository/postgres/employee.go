package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO employees (id, user_id) VALUES ($1, $2)`, e.ID, e.UserID)
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id FROM employees WHERE id = $1`, id).Scan(&e.ID, &e.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id FROM employees WHERE user_id = $1`, userID).Scan(&e.ID, &e.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
