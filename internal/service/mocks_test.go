package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) FindMatch(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListByUserID(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, driver *domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) ListAll(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) Update(ctx context.Context, driver *domain.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockDriverRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDriverRepo) ExistsByLicenseID(ctx context.Context, licenseID string) (bool, error) {
	args := m.Called(ctx, licenseID)
	return args.Bool(0), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmployeeRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListAll(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) ExistsByNumberPlate(ctx context.Context, numberPlate string) (bool, error) {
	args := m.Called(ctx, numberPlate)
	return args.Bool(0), args.Error(1)
}

// MockFareTypeRepo
type MockFareTypeRepo struct {
	mock.Mock
}

func (m *MockFareTypeRepo) GetByName(ctx context.Context, name string) (*domain.FareType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FareType), args.Error(1)
}
func (m *MockFareTypeRepo) ListAll(ctx context.Context) ([]domain.FareType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FareType), args.Error(1)
}

// MockStateRepo
type MockStateRepo struct {
	mock.Mock
}

func (m *MockStateRepo) GetByName(ctx context.Context, name string) (*domain.ReservationState, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationState), args.Error(1)
}
func (m *MockStateRepo) ListAll(ctx context.Context) ([]domain.ReservationState, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReservationState), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) CreateIfVehicleFree(ctx context.Context, reservation *domain.Reservation, lo, hi time.Time) (bool, error) {
	args := m.Called(ctx, reservation, lo, hi)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) GetByIDStateNot(ctx context.Context, id int64, stateName string) (*domain.Reservation, error) {
	args := m.Called(ctx, id, stateName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) ExistsWithinWindowStateNot(ctx context.Context, vehicleID int64, lo, hi time.Time, stateName string) (bool, error) {
	args := m.Called(ctx, vehicleID, lo, hi, stateName)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) DeleteAll(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Save(ctx context.Context, token string, accountID int64) error {
	args := m.Called(ctx, token, accountID)
	return args.Error(0)
}
func (m *MockTokenRepo) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockTokenRepo) IsActive(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(account *domain.Account) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (security.Caller, error) {
	args := m.Called(tokenString)
	return args.Get(0).(security.Caller), args.Error(1)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) FindByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Create(ctx context.Context, caller security.Caller, req *ReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Patch(ctx context.Context, caller security.Caller, id int64, req *ReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, caller, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, caller security.Caller, id int64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}
func (m *MockReservationService) DeleteAllForDriver(ctx context.Context, reservations []domain.Reservation, driverID int64) error {
	args := m.Called(ctx, reservations, driverID)
	return args.Error(0)
}

// pointer helpers for building requests in tests

func strPtr(s string) *string       { return &s }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func dtPtr(t time.Time) *domain.LocalDateTime {
	d := domain.NewLocalDateTime(t)
	return &d
}
