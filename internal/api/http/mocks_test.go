package http

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/security"
	"fastlane-backend/internal/service"
)

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
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Create(ctx context.Context, caller security.Caller, req *service.ReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Patch(ctx context.Context, caller security.Caller, id int64, req *service.ReservationRequest) (*domain.Reservation, error) {
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

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockRegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, req *service.RegisterRequest, isMemberRegistration bool) (*domain.Account, string, error) {
	args := m.Called(ctx, req, isMemberRegistration)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.String(1), args.Error(2)
}

// MockAccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) FindAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) Update(ctx context.Context, caller security.Caller, id int64, req *service.AccountRequest) (*domain.Account, string, error) {
	args := m.Called(ctx, caller, id, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.String(1), args.Error(2)
}
func (m *MockAccountService) Delete(ctx context.Context, caller security.Caller, id int64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) Create(ctx context.Context, req *service.VehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) Update(ctx context.Context, id int64, req *service.VehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
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

var (
	adminCaller    = security.Caller{AccountID: 1, UserID: 100, Role: domain.AccountTypeAdmin}
	employeeCaller = security.Caller{AccountID: 2, UserID: 101, Role: domain.AccountTypeEmployee}
	memberCaller   = security.Caller{AccountID: 5, UserID: 3, Role: domain.AccountTypeMember}
)

// withCaller stamps the request context the way the authenticate middleware
// would, so handler tests can exercise role gates without real tokens.
func withCaller(r *http.Request, caller security.Caller) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), callerContextKey, caller))
}
