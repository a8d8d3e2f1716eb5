package service

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/models"
)

type stateService struct {
	stateRepository store.StateRepository
}

func NewStateService(stateRepository store.StateRepository) StateService {
	return &stateService{
		stateRepository: stateRepository,
	}
}

// CreateState stores state and echoes it back.
func (s *stateService) CreateState(ctx context.Context, username string, state models.State) (models.State, error) {
	if err := s.stateRepository.CreateState(ctx, username, state); err != nil {
		logRepositoryError(ctx, "*stateService.CreateState", username, err)
		return models.State{}, err
	}
	return state, nil
}

func (s *stateService) GetState(ctx context.Context, username, stateID string) (models.State, error) {
	state, err := s.stateRepository.GetState(ctx, username, stateID)
	if err != nil {
		logRepositoryError(ctx, "*stateService.GetState", username, err)
		return models.State{}, err
	}
	return state, nil
}

func (s *stateService) ListStates(ctx context.Context, username, directoryID string) ([]models.State, error) {
	states, err := s.stateRepository.ListStates(ctx, username, directoryID)
	if err != nil {
		logRepositoryError(ctx, "*stateService.ListStates", username, err)
		return nil, err
	}
	return states, nil
}

func (s *stateService) UpdateState(ctx context.Context, username, stateID string, patch models.StatePatch) (models.State, error) {
	state, err := s.stateRepository.UpdateState(ctx, username, stateID, patch)
	if err != nil {
		logRepositoryError(ctx, "*stateService.UpdateState", username, err)
		return models.State{}, err
	}
	return state, nil
}

func (s *stateService) DeleteState(ctx context.Context, username, stateID string) error {
	if err := s.stateRepository.DeleteState(ctx, username, stateID); err != nil {
		logRepositoryError(ctx, "*stateService.DeleteState", username, err)
		return err
	}
	return nil
}
