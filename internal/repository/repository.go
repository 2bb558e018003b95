package repository

import (
	"context"
	"errors"
	"time"

	"fastlane-backend/internal/domain"
)

// ErrNotFound is returned by repository lookups when the requested row does
// not exist. Services translate it into the entity-specific not-found error.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// FindMatch looks for an existing user whose fields (ignoring id) equal
	// the given one; reference-data deduplication for registration.
	FindMatch(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Driver, error)
	ListAll(ctx context.Context) ([]domain.Driver, error)
	Update(ctx context.Context, driver *domain.Driver) error
	Delete(ctx context.Context, id int64) error
	ExistsByLicenseID(ctx context.Context, licenseID string) (bool, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListAll(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
	ExistsByNumberPlate(ctx context.Context, numberPlate string) (bool, error)
}

type FareTypeRepository interface {
	// GetByName matches the fare type name case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.FareType, error)
	ListAll(ctx context.Context) ([]domain.FareType, error)
}

type ReservationStateRepository interface {
	// GetByName matches the state name case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.ReservationState, error)
	ListAll(ctx context.Context) ([]domain.ReservationState, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	// CreateIfVehicleFree re-runs the availability window check and the insert
	// inside one transaction; it reports false without inserting when another
	// non-canceled reservation landed in [lo, hi] since the caller's check.
	CreateIfVehicleFree(ctx context.Context, reservation *domain.Reservation, lo, hi time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// GetByIDStateNot is GetByID restricted to reservations whose state name
	// differs from the given one.
	GetByIDStateNot(ctx context.Context, id int64, stateName string) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error)
	ListByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	// ExistsWithinWindowStateNot reports whether any reservation of the vehicle
	// not in the named state has its stored interval entirely inside [lo, hi]
	// (start >= lo AND end <= hi). This containment-only comparison is the
	// store's chosen overlap semantics and is relied on as-is.
	ExistsWithinWindowStateNot(ctx context.Context, vehicleID int64, lo, hi time.Time, stateName string) (bool, error)
	DeleteAll(ctx context.Context, ids []int64) error
}

// TokenRepository tracks issued access tokens so logout can revoke them
// before their JWT expiry passes.
type TokenRepository interface {
	Save(ctx context.Context, token string, accountID int64) error
	// Revoke marks the token revoked. Revoking a token that was never stored
	// is a no-op.
	Revoke(ctx context.Context, token string) error
	// IsActive reports whether the token was issued and not revoked since.
	IsActive(ctx context.Context, token string) (bool, error)
}
