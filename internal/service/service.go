package service

import (
	"context"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/security"
)

type ReservationService interface {
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	// FindByID excludes canceled reservations: a canceled id reads as not found.
	FindByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// FindByDriverID and FindByVehicleID include canceled reservations.
	FindByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error)
	FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	Create(ctx context.Context, caller security.Caller, req *ReservationRequest) (*domain.Reservation, error)
	Patch(ctx context.Context, caller security.Caller, id int64, req *ReservationRequest) (*domain.Reservation, error)
	// Cancel moves a future reservation to CANCELED and is a silent no-op for
	// reservations that have already started.
	Cancel(ctx context.Context, caller security.Caller, id int64) error
	// DeleteAllForDriver bulk-removes a driver's reservations. Only the
	// account-deletion cascade calls it, after verifying every reservation is
	// settled.
	DeleteAllForDriver(ctx context.Context, reservations []domain.Reservation, driverID int64) error
}

type AccountService interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Update applies the provided fields. When the caller updates their own
	// account a fresh access token is returned alongside, since the old one
	// may embed stale claims.
	Update(ctx context.Context, caller security.Caller, id int64, req *AccountRequest) (*domain.Account, string, error)
	// Delete removes the account and its nested records. Member-tier callers
	// may only delete their own account. For member accounts the reservation
	// cascade gate applies: every reservation of the account's driver must be
	// PAID or CANCELED, otherwise deletion is refused naming the offending
	// reservation.
	Delete(ctx context.Context, caller security.Caller, id int64) error
}

type DriverService interface {
	FindAll(ctx context.Context) ([]domain.Driver, error)
	FindByID(ctx context.Context, id int64) (*domain.Driver, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Driver, error)
	// EnsureLicenseFree fails with a conflict when the license id is already
	// registered to a driver.
	EnsureLicenseFree(ctx context.Context, licenseID string) error
	Update(ctx context.Context, caller security.Caller, id int64, req *DriverRequest) (*domain.Driver, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleService interface {
	FindAll(ctx context.Context) ([]domain.Vehicle, error)
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Create(ctx context.Context, req *VehicleRequest) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, req *VehicleRequest) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type FareTypeService interface {
	FindByName(ctx context.Context, name string) (*domain.FareType, error)
	FindAll(ctx context.Context) ([]domain.FareType, error)
}

type ReservationStateService interface {
	FindByName(ctx context.Context, name string) (*domain.ReservationState, error)
	FindAll(ctx context.Context) ([]domain.ReservationState, error)
}

type RegistrationService interface {
	// Register onboards a member (driver) or an employee: person record
	// deduplication, account-type conflict checks, driver/employee creation
	// and the account itself. Returns the account and an access token.
	Register(ctx context.Context, req *RegisterRequest, isMemberRegistration bool) (*domain.Account, string, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)
	// Logout revokes the presented access token. Unknown tokens are accepted
	// silently so logout stays idempotent.
	Logout(ctx context.Context, token string) error
}
