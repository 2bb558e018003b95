package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
)

type registrationService struct {
	accountRepo  repository.AccountRepository
	userRepo     repository.UserRepository
	driverRepo   repository.DriverRepository
	employeeRepo repository.EmployeeRepository
	fareTypeRepo repository.FareTypeRepository
	tokenRepo    repository.TokenRepository
	tokens       security.TokenManager
}

func NewRegistrationService(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	employeeRepo repository.EmployeeRepository,
	fareTypeRepo repository.FareTypeRepository,
	tokenRepo repository.TokenRepository,
	tokens security.TokenManager,
) RegistrationService {
	return &registrationService{
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		driverRepo:   driverRepo,
		employeeRepo: employeeRepo,
		fareTypeRepo: fareTypeRepo,
		tokenRepo:    tokenRepo,
		tokens:       tokens,
	}
}

// Register onboards a person. For member registrations the request id is the
// driver's license id and typeName doubles as the fare tier; for staff
// registrations the id is the personnel number and typeName is the account
// type to grant.
func (s *registrationService) Register(ctx context.Context, req *RegisterRequest, isMemberRegistration bool) (*domain.Account, string, error) {
	logger.EnterMethod("registrationService.Register", "isMember", isMemberRegistration)

	if err := s.validateRequest(ctx, req, isMemberRegistration); err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", err
	}

	user, err := s.findOrCreateUser(ctx, req)
	if err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", err
	}

	if err := s.validateAccountTypeNotUsedTwice(ctx, user.ID, *req.TypeName, isMemberRegistration); err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", err
	}

	accountType := domain.AccountTypeMember
	if !isMemberRegistration {
		accountType, err = parseAccountType(*req.TypeName)
		if err != nil {
			logger.ExitMethodWithError("registrationService.Register", err)
			return nil, "", err
		}
	}

	if isMemberRegistration {
		fareType, err := s.fareTypeRepo.GetByName(ctx, *req.TypeName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				err = apperrors.New(apperrors.FareTypeNotFound, *req.TypeName)
			} else {
				err = apperrors.From(err)
			}
			logger.ExitMethodWithError("registrationService.Register", err)
			return nil, "", err
		}
		driver := &domain.Driver{
			LicenseID: *req.ID,
			UserID:    user.ID,
			FareType:  fareType.Name,
		}
		if err := s.driverRepo.Create(ctx, driver); err != nil {
			logger.ExitMethodWithError("registrationService.Register", err)
			return nil, "", apperrors.From(err)
		}
	} else {
		employee := &domain.Employee{
			ID:     *req.ID,
			UserID: user.ID,
		}
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			logger.ExitMethodWithError("registrationService.Register", err)
			return nil, "", apperrors.From(err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", apperrors.From(err)
	}
	account := &domain.Account{
		Email:        *req.Email,
		PasswordHash: string(hash),
		Phone:        *req.Phone,
		CreationDate: time.Now(),
		UserID:       user.ID,
		AccountType:  accountType,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", apperrors.From(err)
	}

	token, err := s.tokens.GenerateAccessToken(account)
	if err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", apperrors.From(err)
	}
	if err := s.tokenRepo.Save(ctx, token, account.ID); err != nil {
		logger.ExitMethodWithError("registrationService.Register", err)
		return nil, "", apperrors.From(err)
	}
	logger.ExitMethod("registrationService.Register", "accountID", account.ID)
	return account, token, nil
}

func (s *registrationService) validateRequest(ctx context.Context, req *RegisterRequest, isMemberRegistration bool) error {
	if err := validateFieldsNotNullOrBlank(req.fields()); err != nil {
		return err
	}
	if isMemberRegistration {
		inUse, err := s.driverRepo.ExistsByLicenseID(ctx, *req.ID)
		if err != nil {
			return apperrors.From(err)
		}
		if inUse {
			return apperrors.New(apperrors.DriverLicenseInUse, *req.ID)
		}
	} else {
		exists, err := s.employeeRepo.ExistsByID(ctx, *req.ID)
		if err != nil {
			return apperrors.From(err)
		}
		if exists {
			return apperrors.New(apperrors.EmployeeAlreadyExists, *req.ID)
		}
	}
	taken, err := s.accountRepo.ExistsByEmail(ctx, *req.Email)
	if err != nil {
		return apperrors.From(err)
	}
	if taken {
		return apperrors.New(apperrors.EmailInUse, *req.Email)
	}
	return nil
}

// findOrCreateUser deduplicates the person record: registering a second
// account for the same person reuses the existing user row.
func (s *registrationService) findOrCreateUser(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	dateOfBirth, err := time.Parse("2006-01-02", *req.DateOfBirth)
	if err != nil {
		return nil, apperrors.New(apperrors.BadRequest)
	}
	user := &domain.User{
		FirstName:    *req.FirstName,
		LastName:     *req.LastName,
		DateOfBirth:  dateOfBirth,
		PlaceOfBirth: *req.PlaceOfBirth,
		Street:       *req.Street,
		PostalCode:   *req.PostalCode,
		City:         *req.City,
		CountryCode:  *req.CountryCode,
	}
	existing, err := s.userRepo.FindMatch(ctx, user)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.From(err)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.From(err)
	}
	return user, nil
}

// validateAccountTypeNotUsedTwice enforces one account per type and person:
// a person holds at most one member account and cannot combine an admin
// account with an employee account.
func (s *registrationService) validateAccountTypeNotUsedTwice(ctx context.Context, userID int64, typeName string, isMemberRegistration bool) error {
	requested := strings.ToLower(typeName)

	if !isMemberRegistration && requested != "admin" && requested != "employee" {
		return apperrors.New(apperrors.AccountTypeNotFound, requested)
	}

	accounts, err := s.accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return apperrors.From(err)
	}
	if len(accounts) == 0 {
		return nil
	}

	used := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		used[strings.ToLower(string(a.AccountType))] = true
	}

	if isMemberRegistration && used["member"] {
		return apperrors.New(apperrors.AccountTypeUsedTwice, domain.AccountTypeMember, userID)
	}
	if !isMemberRegistration {
		if used[requested] {
			return apperrors.New(apperrors.AccountTypeUsedTwice, requested, userID)
		}
		if (used["admin"] && requested == "employee") || (used["employee"] && requested == "admin") {
			return apperrors.New(apperrors.AccountTypeConflict, userID)
		}
	}
	return nil
}
