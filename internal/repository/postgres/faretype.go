package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type fareTypeRepository struct {
	db *sql.DB
}

func NewFareTypeRepository(db *sql.DB) repository.FareTypeRepository {
	return &fareTypeRepository{db: db}
}

func (r *fareTypeRepository) GetByName(ctx context.Context, name string) (*domain.FareType, error) {
	f := &domain.FareType{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price FROM fare_types WHERE lower(name) = lower($1)`, name).
		Scan(&f.ID, &f.Name, &f.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fareTypeRepository) ListAll(ctx context.Context) ([]domain.FareType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM fare_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fareTypes []domain.FareType
	for rows.Next() {
		var f domain.FareType
		if err := rows.Scan(&f.ID, &f.Name, &f.Price); err != nil {
			return nil, err
		}
		fareTypes = append(fareTypes, f)
	}
	return fareTypes, rows.Err()
}

type reservationStateRepository struct {
	db *sql.DB
}

func NewReservationStateRepository(db *sql.DB) repository.ReservationStateRepository {
	return &reservationStateRepository{db: db}
}

func (r *reservationStateRepository) GetByName(ctx context.Context, name string) (*domain.ReservationState, error) {
	s := &domain.ReservationState{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM reservation_states WHERE lower(name) = lower($1)`, name).
		Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *reservationStateRepository) ListAll(ctx context.Context) ([]domain.ReservationState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM reservation_states ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []domain.ReservationState
	for rows.Next() {
		var s domain.ReservationState
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}
