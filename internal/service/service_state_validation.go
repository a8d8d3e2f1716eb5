package service

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/validators"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// StateValidationService rejects malformed states and patches before they
// reach the wrapped StateService. A state payload must be a JSON object.
type StateValidationService struct {
	inner     StateService
	validator validators.Validator
}

func NewStateValidationService(limits config.Limits) StateServiceWrapper {
	return &StateValidationService{
		validator: validators.NewDataValidator(limits),
	}
}

func (v *StateValidationService) CreateState(ctx context.Context, username string, state models.State) (models.State, error) {
	if err := v.validator.Validate(ctx, state); err != nil {
		return models.State{}, validationError(err)
	}
	return v.inner.CreateState(ctx, username, state)
}

func (v *StateValidationService) GetState(ctx context.Context, username, stateID string) (models.State, error) {
	return v.inner.GetState(ctx, username, stateID)
}

func (v *StateValidationService) ListStates(ctx context.Context, username, directoryID string) ([]models.State, error) {
	return v.inner.ListStates(ctx, username, directoryID)
}

func (v *StateValidationService) UpdateState(ctx context.Context, username, stateID string, patch models.StatePatch) (models.State, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.State{}, validationError(err)
	}
	return v.inner.UpdateState(ctx, username, stateID, patch)
}

func (v *StateValidationService) DeleteState(ctx context.Context, username, stateID string) error {
	return v.inner.DeleteState(ctx, username, stateID)
}

func (v *StateValidationService) Wrap(wrapped StateService) StateService {
	v.inner = wrapped
	return v
}
