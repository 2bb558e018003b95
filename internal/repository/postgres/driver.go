package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

const driverColumns = `d.id, d.license_id, d.user_id, f.name`

func scanDriver(row interface{ Scan(...any) error }) (*domain.Driver, error) {
	d := &domain.Driver{}
	if err := row.Scan(&d.ID, &d.LicenseID, &d.UserID, &d.FareType); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (license_id, user_id, fare_type_id)
	          VALUES ($1, $2, (SELECT id FROM fare_types WHERE lower(name) = lower($3))) RETURNING id`
	return r.db.QueryRowContext(ctx, query, d.LicenseID, d.UserID, d.FareType).Scan(&d.ID)
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers d JOIN fare_types f ON f.id = d.fare_type_id WHERE d.id = $1`
	d, err := scanDriver(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return d, err
}

func (r *driverRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers d JOIN fare_types f ON f.id = d.fare_type_id WHERE d.user_id = $1`
	d, err := scanDriver(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return d, err
}

func (r *driverRepository) ListAll(ctx context.Context) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers d JOIN fare_types f ON f.id = d.fare_type_id ORDER BY d.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, *d)
	}
	return drivers, rows.Err()
}

func (r *driverRepository) Update(ctx context.Context, d *domain.Driver) error {
	query := `UPDATE drivers SET license_id = $1, fare_type_id = (SELECT id FROM fare_types WHERE lower(name) = lower($2)) WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, d.LicenseID, d.FareType, d.ID)
	return err
}

func (r *driverRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *driverRepository) ExistsByLicenseID(ctx context.Context, licenseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM drivers WHERE license_id = $1)`, licenseID).Scan(&exists)
	return exists, err
}
