package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
)

type accountService struct {
	accountRepo    repository.AccountRepository
	userRepo       repository.UserRepository
	driverRepo     repository.DriverRepository
	employeeRepo   repository.EmployeeRepository
	tokenRepo      repository.TokenRepository
	reservationSvc ReservationService
	tokens         security.TokenManager
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	employeeRepo repository.EmployeeRepository,
	tokenRepo repository.TokenRepository,
	reservationSvc ReservationService,
	tokens security.TokenManager,
) AccountService {
	return &accountService{
		accountRepo:    accountRepo,
		userRepo:       userRepo,
		driverRepo:     driverRepo,
		employeeRepo:   employeeRepo,
		tokenRepo:      tokenRepo,
		reservationSvc: reservationSvc,
		tokens:         tokens,
	}
}

func (s *accountService) FindAll(ctx context.Context) ([]domain.Account, error) {
	logger.EnterMethod("accountService.FindAll")
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		logger.ExitMethodWithError("accountService.FindAll", err)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("accountService.FindAll", "count", len(accounts))
	return accounts, nil
}

func (s *accountService) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.AccountNotFound, id)
		}
		return nil, apperrors.From(err)
	}
	return account, nil
}

func (s *accountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.AccountNotFound, email)
		}
		return nil, apperrors.From(err)
	}
	return account, nil
}

func (s *accountService) Update(ctx context.Context, caller security.Caller, id int64, req *AccountRequest) (*domain.Account, string, error) {
	logger.EnterMethod("accountService.Update", "accountID", id)

	if err := validateFieldsNotBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
		return nil, "", err
	}

	account, err := s.FindByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
		return nil, "", err
	}
	if caller.IsMember() && account.UserID != caller.UserID {
		err := apperrors.New(apperrors.AccessDenied)
		logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
		return nil, "", err
	}

	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
			return nil, "", apperrors.From(err)
		}
		account.PasswordHash = string(hash)
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.AccountType != nil {
		accountType, err := parseAccountType(*req.AccountType)
		if err != nil {
			logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
			return nil, "", err
		}
		account.AccountType = accountType
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
		return nil, "", apperrors.From(err)
	}

	var token string
	if account.ID == caller.AccountID {
		token, err = s.tokens.GenerateAccessToken(account)
		if err != nil {
			logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
			return nil, "", apperrors.From(err)
		}
		if err := s.tokenRepo.Save(ctx, token, account.ID); err != nil {
			logger.ExitMethodWithError("accountService.Update", err, "accountID", id)
			return nil, "", apperrors.From(err)
		}
	}
	logger.ExitMethod("accountService.Update", "accountID", id)
	return account, token, nil
}

// Delete removes the account together with its person-scoped records. A
// member-tier caller may only delete their own account; staff callers may
// delete any. Member accounts are gated on their driver's reservations: one
// UNPAID reservation blocks the whole cascade and its id is reported back.
func (s *accountService) Delete(ctx context.Context, caller security.Caller, id int64) error {
	logger.EnterMethod("accountService.Delete", "accountID", id)

	account, err := s.FindByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
		return err
	}
	if caller.IsMember() && account.UserID != caller.UserID {
		err := apperrors.New(apperrors.AccessDenied)
		logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
		return err
	}

	accounts, err := s.accountRepo.ListByUserID(ctx, account.UserID)
	if err != nil {
		logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
		return apperrors.From(err)
	}

	switch account.AccountType {
	case domain.AccountTypeMember, domain.AccountTypeMemberEmployee:
		if err := s.deleteDriverIfAllReservationsSettled(ctx, account.UserID); err != nil {
			logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
			return err
		}
	default:
		employee, err := s.employeeRepo.GetByUserID(ctx, account.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				err = apperrors.New(apperrors.EmployeeNotFound, account.UserID)
			} else {
				err = apperrors.From(err)
			}
			logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
			return err
		}
		if err := s.employeeRepo.Delete(ctx, employee.ID); err != nil {
			logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
			return apperrors.From(err)
		}
	}

	// The person record goes with the last account referencing it.
	if len(accounts) == 1 {
		if err := s.userRepo.Delete(ctx, account.UserID); err != nil {
			logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
			return apperrors.From(err)
		}
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.AccountNotFound, id)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("accountService.Delete", err, "accountID", id)
		return err
	}
	logger.ExitMethod("accountService.Delete", "accountID", id)
	return nil
}

// deleteDriverIfAllReservationsSettled refuses the cascade as soon as one
// reservation is neither PAID nor CANCELED, naming the offending reservation.
// Otherwise the driver's reservations and the driver itself are removed.
func (s *accountService) deleteDriverIfAllReservationsSettled(ctx context.Context, userID int64) error {
	driver, err := s.driverRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.DriverNotFound, userID)
		}
		return apperrors.From(err)
	}

	reservations, err := s.reservationSvc.FindByDriverID(ctx, driver.ID)
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		if !reservation.State.IsSettled() {
			return apperrors.New(apperrors.ReservationNotPaid, reservation.ID)
		}
	}

	if err := s.reservationSvc.DeleteAllForDriver(ctx, reservations, driver.ID); err != nil {
		return err
	}
	if err := s.driverRepo.Delete(ctx, driver.ID); err != nil {
		return apperrors.From(err)
	}
	return nil
}

func parseAccountType(name string) (domain.AccountType, error) {
	switch domain.AccountType(strings.ToUpper(name)) {
	case domain.AccountTypeAdmin:
		return domain.AccountTypeAdmin, nil
	case domain.AccountTypeEmployee:
		return domain.AccountTypeEmployee, nil
	case domain.AccountTypeMember:
		return domain.AccountTypeMember, nil
	case domain.AccountTypeMemberEmployee:
		return domain.AccountTypeMemberEmployee, nil
	default:
		return "", apperrors.New(apperrors.AccountTypeNotFound, name)
	}
}
