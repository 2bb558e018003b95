package postgres

import (
	"database/sql"

	"fastlane-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AccountRepository
	repository.DriverRepository
	repository.EmployeeRepository
	repository.VehicleRepository
	repository.FareTypeRepository
	repository.ReservationStateRepository
	repository.ReservationRepository
	repository.TokenRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                         db,
		UserRepository:             NewUserRepository(db),
		AccountRepository:          NewAccountRepository(db),
		DriverRepository:           NewDriverRepository(db),
		EmployeeRepository:         NewEmployeeRepository(db),
		VehicleRepository:          NewVehicleRepository(db),
		FareTypeRepository:         NewFareTypeRepository(db),
		ReservationStateRepository: NewReservationStateRepository(db),
		ReservationRepository:      NewReservationRepository(db),
		TokenRepository:            NewTokenRepository(db),
	}
}
