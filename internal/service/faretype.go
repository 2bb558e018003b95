package service

import (
	"context"
	"errors"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/repository"
)

type fareTypeService struct {
	fareTypeRepo repository.FareTypeRepository
}

func NewFareTypeService(fareTypeRepo repository.FareTypeRepository) FareTypeService {
	return &fareTypeService{fareTypeRepo: fareTypeRepo}
}

func (s *fareTypeService) FindByName(ctx context.Context, name string) (*domain.FareType, error) {
	fareType, err := s.fareTypeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.FareTypeNotFound, name)
		}
		return nil, apperrors.From(err)
	}
	return fareType, nil
}

func (s *fareTypeService) FindAll(ctx context.Context) ([]domain.FareType, error) {
	fareTypes, err := s.fareTypeRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.From(err)
	}
	return fareTypes, nil
}

type reservationStateService struct {
	stateRepo repository.ReservationStateRepository
}

func NewReservationStateService(stateRepo repository.ReservationStateRepository) ReservationStateService {
	return &reservationStateService{stateRepo: stateRepo}
}

func (s *reservationStateService) FindByName(ctx context.Context, name string) (*domain.ReservationState, error) {
	state, err := s.stateRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ReservationStateNotFound, name)
		}
		return nil, apperrors.From(err)
	}
	return state, nil
}

func (s *reservationStateService) FindAll(ctx context.Context) ([]domain.ReservationState, error) {
	states, err := s.stateRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.From(err)
	}
	return states, nil
}
