package service

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/validators"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// DirectoryValidationService rejects malformed directories and patches
// before they reach the wrapped DirectoryService.
type DirectoryValidationService struct {
	inner     DirectoryService
	validator validators.Validator
}

func NewDirectoryValidationService(limits config.Limits) DirectoryServiceWrapper {
	return &DirectoryValidationService{
		validator: validators.NewDataValidator(limits),
	}
}

func (v *DirectoryValidationService) CreateDirectory(ctx context.Context, username string, dir models.Directory) (models.Directory, error) {
	if err := v.validator.Validate(ctx, dir); err != nil {
		return models.Directory{}, validationError(err)
	}
	return v.inner.CreateDirectory(ctx, username, dir)
}

func (v *DirectoryValidationService) ListDirectories(ctx context.Context, username string) ([]models.Directory, error) {
	return v.inner.ListDirectories(ctx, username)
}

func (v *DirectoryValidationService) UpdateDirectory(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Directory{}, validationError(err)
	}
	return v.inner.UpdateDirectory(ctx, username, directoryID, patch)
}

func (v *DirectoryValidationService) DeleteDirectory(ctx context.Context, username, directoryID string) error {
	return v.inner.DeleteDirectory(ctx, username, directoryID)
}

func (v *DirectoryValidationService) Wrap(wrapped DirectoryService) DirectoryService {
	v.inner = wrapped
	return v
}
