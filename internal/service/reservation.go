package service

import (
	"context"
	"errors"
	"time"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/observability"
	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
	"fastlane-backend/internal/utils"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	stateRepo       repository.ReservationStateRepository
	vehicleRepo     repository.VehicleRepository
	driverRepo      repository.DriverRepository
	fareTypeRepo    repository.FareTypeRepository
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	stateRepo repository.ReservationStateRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	fareTypeRepo repository.FareTypeRepository,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		stateRepo:       stateRepo,
		vehicleRepo:     vehicleRepo,
		driverRepo:      driverRepo,
		fareTypeRepo:    fareTypeRepo,
	}
}

func (s *reservationService) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	logger.EnterMethod("reservationService.FindAll")
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		logger.ExitMethodWithError("reservationService.FindAll", err)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("reservationService.FindAll", "count", len(reservations))
	return reservations, nil
}

// FindByID treats canceled reservations as gone: looking one up by id reports
// not found.
func (s *reservationService) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByIDStateNot(ctx, id, domain.StateCanceled)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ReservationNotFound, id)
		}
		return nil, apperrors.From(err)
	}
	return reservation, nil
}

func (s *reservationService) FindByDriverID(ctx context.Context, driverID int64) ([]domain.Reservation, error) {
	logger.EnterMethod("reservationService.FindByDriverID", "driverID", driverID)
	if _, err := s.findDriver(ctx, driverID); err != nil {
		logger.ExitMethodWithError("reservationService.FindByDriverID", err, "driverID", driverID)
		return nil, err
	}
	reservations, err := s.reservationRepo.ListByDriverID(ctx, driverID)
	if err != nil {
		logger.ExitMethodWithError("reservationService.FindByDriverID", err, "driverID", driverID)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("reservationService.FindByDriverID", "driverID", driverID, "count", len(reservations))
	return reservations, nil
}

func (s *reservationService) FindByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	logger.EnterMethod("reservationService.FindByVehicleID", "vehicleID", vehicleID)
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.VehicleNotFound, vehicleID)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("reservationService.FindByVehicleID", err, "vehicleID", vehicleID)
		return nil, err
	}
	reservations, err := s.reservationRepo.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		logger.ExitMethodWithError("reservationService.FindByVehicleID", err, "vehicleID", vehicleID)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("reservationService.FindByVehicleID", "vehicleID", vehicleID, "count", len(reservations))
	return reservations, nil
}

// Create books a vehicle. The request is checked in a fixed order: field
// presence, caller's right to book for the driver, price, period, vehicle
// availability. The availability window re-check runs a second time inside
// the insert transaction so two concurrent bookings of the same vehicle
// cannot both land.
func (s *reservationService) Create(ctx context.Context, caller security.Caller, req *ReservationRequest) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.Create", "callerAccountID", caller.AccountID)

	if err := validateFieldsNotNullOrBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}
	if err := s.authorizeDriverAccess(ctx, caller, *req.DriverID); err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}

	start := req.StartDateTime.Time
	end := req.EndDateTime.Time

	driver, err := s.findDriver(ctx, *req.DriverID)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}
	if err := s.validatePrice(ctx, driver, *req.Price, start, end); err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}
	if !start.Before(end) {
		err := apperrors.New(apperrors.InvalidPeriod, *req.StartDateTime, *req.EndDateTime)
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}

	lo, hi := utils.PadReservationWindow(start, end)
	taken, err := s.reservationRepo.ExistsWithinWindowStateNot(ctx, *req.VehicleID, lo, hi, domain.StateCanceled)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, apperrors.From(err)
	}
	if taken {
		observability.ReservationConflictsTotal.Inc()
		err := apperrors.New(apperrors.VehicleAlreadyReserved, *req.VehicleID, *req.StartDateTime, *req.EndDateTime)
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, *req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.VehicleNotFound, *req.VehicleID)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}
	state, err := s.findState(ctx, *req.ReservationState)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}

	reservation := &domain.Reservation{
		VehicleID:     vehicle.ID,
		DriverID:      driver.ID,
		Price:         *req.Price,
		CurrencyCode:  *req.CurrencyCode,
		StartDateTime: start,
		EndDateTime:   end,
		State:         *state,
	}
	created, err := s.reservationRepo.CreateIfVehicleFree(ctx, reservation, lo, hi)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, apperrors.From(err)
	}
	if !created {
		observability.ReservationConflictsTotal.Inc()
		err := apperrors.New(apperrors.VehicleAlreadyReserved, *req.VehicleID, *req.StartDateTime, *req.EndDateTime)
		logger.ExitMethodWithError("reservationService.Create", err)
		return nil, err
	}

	observability.ReservationsCreatedTotal.Inc()
	logger.ExitMethod("reservationService.Create", "reservationID", reservation.ID)
	return reservation, nil
}

// Patch only permits changing the reservation state. Every other field of the
// request must stay unset; each is refused with its own error, checked in a
// fixed order. The final load does not exclude canceled reservations, so an
// admin can move a canceled reservation back into another state.
func (s *reservationService) Patch(ctx context.Context, caller security.Caller, id int64, req *ReservationRequest) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.Patch", "reservationID", id)

	if err := validateFieldsNotBlank(req.fields()); err != nil {
		logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
		return nil, err
	}
	if err := s.authorizeReservationAccess(ctx, caller, id); err != nil {
		logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
		return nil, err
	}

	var err error
	switch {
	case req.DriverID != nil:
		err = apperrors.New(apperrors.PatchDriverForbidden)
	case req.VehicleID != nil:
		err = apperrors.New(apperrors.PatchVehicleForbidden)
	case req.Price != nil:
		err = apperrors.New(apperrors.PatchPriceForbidden)
	case req.CurrencyCode != nil:
		err = apperrors.New(apperrors.PatchCurrencyForbidden)
	case req.StartDateTime != nil || req.EndDateTime != nil:
		err = apperrors.New(apperrors.PatchDatesForbidden)
	}
	if err != nil {
		logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
		return nil, err
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = apperrors.New(apperrors.ReservationNotFound, id)
		} else {
			err = apperrors.From(err)
		}
		logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
		return nil, err
	}

	if req.ReservationState != nil {
		state, err := s.findState(ctx, *req.ReservationState)
		if err != nil {
			logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
			return nil, err
		}
		reservation.State = *state
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		logger.ExitMethodWithError("reservationService.Patch", err, "reservationID", id)
		return nil, apperrors.From(err)
	}
	logger.ExitMethod("reservationService.Patch", "reservationID", id)
	return reservation, nil
}

// Cancel moves a future reservation to CANCELED. A reservation whose start
// has already passed is left untouched and the call still succeeds.
func (s *reservationService) Cancel(ctx context.Context, caller security.Caller, id int64) error {
	logger.EnterMethod("reservationService.Cancel", "reservationID", id)

	if err := s.authorizeReservationAccess(ctx, caller, id); err != nil {
		logger.ExitMethodWithError("reservationService.Cancel", err, "reservationID", id)
		return err
	}
	reservation, err := s.FindByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Cancel", err, "reservationID", id)
		return err
	}
	if reservation.StartDateTime.After(time.Now()) {
		state, err := s.findState(ctx, domain.StateCanceled)
		if err != nil {
			logger.ExitMethodWithError("reservationService.Cancel", err, "reservationID", id)
			return err
		}
		reservation.State = *state
		if err := s.reservationRepo.Update(ctx, reservation); err != nil {
			logger.ExitMethodWithError("reservationService.Cancel", err, "reservationID", id)
			return apperrors.From(err)
		}
		// Counted here rather than by the handler: a no-op cancel of an
		// already started reservation must not inflate the metric.
		observability.ReservationsCanceledTotal.Inc()
	}
	logger.ExitMethod("reservationService.Cancel", "reservationID", id)
	return nil
}

func (s *reservationService) DeleteAllForDriver(ctx context.Context, reservations []domain.Reservation, driverID int64) error {
	logger.EnterMethod("reservationService.DeleteAllForDriver", "driverID", driverID, "count", len(reservations))
	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.ID)
	}
	if err := s.reservationRepo.DeleteAll(ctx, ids); err != nil {
		logger.ExitMethodWithError("reservationService.DeleteAllForDriver", err, "driverID", driverID)
		return apperrors.From(err)
	}
	logger.ExitMethod("reservationService.DeleteAllForDriver", "driverID", driverID)
	return nil
}

// authorizeDriverAccess lets members act only on their own driver record.
// The driver is looked up first, so a bad driver id surfaces as not found
// rather than as an authorization failure.
func (s *reservationService) authorizeDriverAccess(ctx context.Context, caller security.Caller, driverID int64) error {
	if !caller.IsMember() {
		return nil
	}
	driver, err := s.findDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if driver.UserID != caller.UserID {
		return apperrors.New(apperrors.AccessDenied)
	}
	return nil
}

// authorizeReservationAccess lets members act only on reservations booked for
// their own driver record. The reservation is loaded with canceled ones
// excluded, so for a member a canceled id reads as not found before any
// further checks run.
func (s *reservationService) authorizeReservationAccess(ctx context.Context, caller security.Caller, id int64) error {
	if !caller.IsMember() {
		return nil
	}
	reservation, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	driver, err := s.findDriver(ctx, reservation.DriverID)
	if err != nil {
		return err
	}
	if driver.UserID != caller.UserID {
		return apperrors.New(apperrors.AccessDenied)
	}
	return nil
}

// validatePrice recomputes the fare from the driver's tier and the requested
// period and requires an exact match with the quoted price.
func (s *reservationService) validatePrice(ctx context.Context, driver *domain.Driver, quoted float64, start, end time.Time) error {
	fareType, err := s.fareTypeRepo.GetByName(ctx, driver.FareType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.FareTypeNotFound, driver.FareType)
		}
		return apperrors.From(err)
	}
	calculated := utils.CalculateReservationPrice(fareType.Price, start, end)
	if quoted != calculated {
		return apperrors.New(apperrors.PriceMismatch, quoted)
	}
	return nil
}

func (s *reservationService) findDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.DriverNotFound, id)
		}
		return nil, apperrors.From(err)
	}
	return driver, nil
}

func (s *reservationService) findState(ctx context.Context, name string) (*domain.ReservationState, error) {
	state, err := s.stateRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ReservationStateNotFound, name)
		}
		return nil, apperrors.From(err)
	}
	return state, nil
}
