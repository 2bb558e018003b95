package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"

	"github.com/lib/pq"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `r.id, r.vehicle_id, r.driver_id, r.price, r.currency_code, r.start_date_time, r.end_date_time, s.id, s.name`

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	err := row.Scan(&rv.ID, &rv.VehicleID, &rv.DriverID, &rv.Price, &rv.CurrencyCode,
		&rv.StartDateTime, &rv.EndDateTime, &rv.State.ID, &rv.State.Name)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (vehicle_id, driver_id, price, currency_code, start_date_time, end_date_time, state_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.VehicleID, rv.DriverID, rv.Price, rv.CurrencyCode,
		rv.StartDateTime, rv.EndDateTime, rv.State.ID).Scan(&rv.ID)
}

func (r *reservationRepository) CreateIfVehicleFree(ctx context.Context, rv *domain.Reservation, lo, hi time.Time) (bool, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var taken bool
	check := `SELECT EXISTS (
	            SELECT 1 FROM reservations r JOIN reservation_states s ON s.id = r.state_id
	            WHERE r.vehicle_id = $1 AND r.start_date_time >= $2 AND r.end_date_time <= $3 AND s.name <> $4)`
	if err := tx.QueryRowContext(ctx, check, rv.VehicleID, lo, hi, domain.StateCanceled).Scan(&taken); err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	insert := `INSERT INTO reservations (vehicle_id, driver_id, price, currency_code, start_date_time, end_date_time, state_id)
	           VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, rv.VehicleID, rv.DriverID, rv.Price, rv.CurrencyCode,
		rv.StartDateTime, rv.EndDateTime, rv.State.ID).Scan(&rv.ID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r JOIN reservation_states s ON s.id = r.state_id WHERE r.id = $1`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return rv, err
}

func (r *reservationRepository) GetByIDStateNot(ctx context.Context, id int64, stateName string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r JOIN reservation_states s ON s.id = r.state_id
	          WHERE r.id = $1 AND s.name <> $2`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, query, id, stateName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return rv, err
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r JOIN reservation_states s ON s.id = r.state_id ORDER BY r.id`
	return r.list(ctx, query)
}

func (r *reservationRepository) ListByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r JOIN reservation_states s ON s.id = r.state_id
	          WHERE r.driver_id = $1 ORDER BY r.id`
	return r.list(ctx, query, driverID)
}

func (r *reservationRepository) ListByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r JOIN reservation_states s ON s.id = r.state_id
	          WHERE r.vehicle_id = $1 ORDER BY r.id`
	return r.list(ctx, query, vehicleID)
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rv)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET state_id = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, rv.State.ID, rv.ID)
	return err
}

func (r *reservationRepository) ExistsWithinWindowStateNot(ctx context.Context, vehicleID int64, lo, hi time.Time, stateName string) (bool, error) {
	// Containment-only overlap semantics: a stored interval counts iff it lies
	// entirely inside the padded [lo, hi] window.
	query := `SELECT EXISTS (
	            SELECT 1 FROM reservations r JOIN reservation_states s ON s.id = r.state_id
	            WHERE r.vehicle_id = $1 AND r.start_date_time >= $2 AND r.end_date_time <= $3 AND s.name <> $4)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, vehicleID, lo, hi, stateName).Scan(&exists)
	return exists, err
}

func (r *reservationRepository) DeleteAll(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `DELETE FROM reservations WHERE id = ANY($1)`
	_, err := r.db.ExecContext(ctx, query, pq.Array(ids))
	return err
}
