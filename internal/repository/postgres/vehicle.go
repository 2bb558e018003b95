package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, number_plate, brand, model, category, transmission, fuel, construction_year, mileage`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.NumberPlate, &v.Brand, &v.Model, &v.Category, &v.Transmission,
		&v.Fuel, &v.ConstructionYear, &v.Mileage)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (number_plate, brand, model, category, transmission, fuel, construction_year, mileage)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.NumberPlate, v.Brand, v.Model, v.Category,
		v.Transmission, v.Fuel, v.ConstructionYear, v.Mileage).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return v, err
}

func (r *vehicleRepository) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET number_plate = $1, brand = $2, model = $3, category = $4,
	          transmission = $5, fuel = $6, construction_year = $7, mileage = $8 WHERE id = $9`
	_, err := r.db.ExecContext(ctx, query, v.NumberPlate, v.Brand, v.Model, v.Category,
		v.Transmission, v.Fuel, v.ConstructionYear, v.Mileage, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) ExistsByNumberPlate(ctx context.Context, numberPlate string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM vehicles WHERE number_plate = $1)`, numberPlate).Scan(&exists)
	return exists, err
}
