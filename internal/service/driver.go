package service

import (
	"context"
	"errors"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
)

type driverService struct {
	driverRepo   repository.DriverRepository
	fareTypeRepo repository.FareTypeRepository
}

func NewDriverService(driverRepo repository.DriverRepository, fareTypeRepo repository.FareTypeRepository) DriverService {
	return &driverService{driverRepo: driverRepo, fareTypeRepo: fareTypeRepo}
}

func (s *driverService) FindAll(ctx context.Context) ([]domain.Driver, error) {
	logger.EnterMethod("driverService.FindAll")
	drivers, err := s.driverRepo.ListAll(ctx)
	if err != nil {
		logger.ExitMethodWithError("driverService.FindAll", err)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("driverService.FindAll", "count", len(drivers))
	return drivers, nil
}

func (s *driverService) FindByID(ctx context.Context, id int64) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.DriverNotFound, id)
		}
		return nil, apperrors.From(err)
	}
	return driver, nil
}

func (s *driverService) FindByUserID(ctx context.Context, userID int64) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.DriverNotFound, userID)
		}
		return nil, apperrors.From(err)
	}
	return driver, nil
}

func (s *driverService) EnsureLicenseFree(ctx context.Context, licenseID string) error {
	inUse, err := s.driverRepo.ExistsByLicenseID(ctx, licenseID)
	if err != nil {
		return apperrors.From(err)
	}
	if inUse {
		return apperrors.New(apperrors.DriverLicenseInUse, licenseID)
	}
	return nil
}

// Update lets members change only their own driver record; license id and
// fare tier are the patchable fields.
func (s *driverService) Update(ctx context.Context, caller security.Caller, id int64, req *DriverRequest) (*domain.Driver, error) {
	logger.EnterMethod("driverService.Update", "driverID", id)

	if err := validateFieldsNotBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("driverService.Update", err, "driverID", id)
		return nil, err
	}

	driver, err := s.FindByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("driverService.Update", err, "driverID", id)
		return nil, err
	}
	if caller.IsMember() && driver.UserID != caller.UserID {
		err := apperrors.New(apperrors.AccessDenied)
		logger.ExitMethodWithError("driverService.Update", err, "driverID", id)
		return nil, err
	}

	if req.LicenseID != nil {
		driver.LicenseID = *req.LicenseID
	}
	if req.FareTypeName != nil {
		fareType, err := s.fareTypeRepo.GetByName(ctx, *req.FareTypeName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				err = apperrors.New(apperrors.FareTypeNotFound, *req.FareTypeName)
			} else {
				err = apperrors.From(err)
			}
			logger.ExitMethodWithError("driverService.Update", err, "driverID", id)
			return nil, err
		}
		driver.FareType = fareType.Name
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		logger.ExitMethodWithError("driverService.Update", err, "driverID", id)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("driverService.Update", "driverID", id)
	return driver, nil
}

func (s *driverService) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("driverService.Delete", "driverID", id)
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.DriverNotFound, id)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("driverService.Delete", err, "driverID", id)
		return err
	}
	logger.ExitMethod("driverService.Delete", "driverID", id)
	return nil
}
