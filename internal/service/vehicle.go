package service

import (
	"context"
	"errors"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	logger.EnterMethod("vehicleService.FindAll")
	vehicles, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		logger.ExitMethodWithError("vehicleService.FindAll", err)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("vehicleService.FindAll", "count", len(vehicles))
	return vehicles, nil
}

func (s *vehicleService) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.VehicleNotFound, id)
		}
		return nil, apperrors.From(err)
	}
	return vehicle, nil
}

func (s *vehicleService) Create(ctx context.Context, req *VehicleRequest) (*domain.Vehicle, error) {
	logger.EnterMethod("vehicleService.Create")

	if err := validateFieldsNotNullOrBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("vehicleService.Create", err)
		return nil, err
	}
	taken, err := s.vehicleRepo.ExistsByNumberPlate(ctx, *req.NumberPlate)
	if err != nil {
		logger.ExitMethodWithError("vehicleService.Create", err)
		return nil, apperrors.From(err)
	}
	if taken {
		err := apperrors.New(apperrors.NumberPlateAlreadyUsed, *req.NumberPlate)
		logger.ExitMethodWithError("vehicleService.Create", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		NumberPlate:      *req.NumberPlate,
		Brand:            *req.Brand,
		Model:            *req.Model,
		Category:         *req.Category,
		Transmission:     *req.Transmission,
		Fuel:             *req.Fuel,
		ConstructionYear: *req.ConstructionYear,
		Mileage:          *req.Mileage,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		logger.ExitMethodWithError("vehicleService.Create", err)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("vehicleService.Create", "vehicleID", vehicle.ID)
	return vehicle, nil
}

// Update applies the provided fields. A number plate that is already taken is
// skipped silently instead of failing the whole patch.
func (s *vehicleService) Update(ctx context.Context, id int64, req *VehicleRequest) (*domain.Vehicle, error) {
	logger.EnterMethod("vehicleService.Update", "vehicleID", id)

	if err := validateFieldsNotBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("vehicleService.Update", err, "vehicleID", id)
		return nil, err
	}

	vehicle, err := s.FindByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("vehicleService.Update", err, "vehicleID", id)
		return nil, err
	}

	if req.NumberPlate != nil {
		taken, err := s.vehicleRepo.ExistsByNumberPlate(ctx, *req.NumberPlate)
		if err != nil {
			logger.ExitMethodWithError("vehicleService.Update", err, "vehicleID", id)
			return nil, apperrors.From(err)
		}
		if !taken {
			vehicle.NumberPlate = *req.NumberPlate
		}
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Category != nil {
		vehicle.Category = *req.Category
	}
	if req.Transmission != nil {
		vehicle.Transmission = *req.Transmission
	}
	if req.Fuel != nil {
		vehicle.Fuel = *req.Fuel
	}
	if req.ConstructionYear != nil {
		vehicle.ConstructionYear = *req.ConstructionYear
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		logger.ExitMethodWithError("vehicleService.Update", err, "vehicleID", id)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("vehicleService.Update", "vehicleID", id)
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	logger.EnterMethod("vehicleService.Delete", "vehicleID", id)
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.VehicleNotFound, id)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("vehicleService.Delete", err, "vehicleID", id)
		return err
	}
	logger.ExitMethod("vehicleService.Delete", "vehicleID", id)
	return nil
}
