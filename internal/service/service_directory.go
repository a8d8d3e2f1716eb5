package service

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/models"
)

type directoryService struct {
	directoryRepository store.DirectoryRepository
}

func NewDirectoryService(directoryRepository store.DirectoryRepository) DirectoryService {
	return &directoryService{
		directoryRepository: directoryRepository,
	}
}

// CreateDirectory stores dir and echoes it back.
func (d *directoryService) CreateDirectory(ctx context.Context, username string, dir models.Directory) (models.Directory, error) {
	if err := d.directoryRepository.CreateDirectory(ctx, username, dir); err != nil {
		logRepositoryError(ctx, "*directoryService.CreateDirectory", username, err)
		return models.Directory{}, err
	}
	return dir, nil
}

func (d *directoryService) ListDirectories(ctx context.Context, username string) ([]models.Directory, error) {
	dirs, err := d.directoryRepository.ListDirectories(ctx, username)
	if err != nil {
		logRepositoryError(ctx, "*directoryService.ListDirectories", username, err)
		return nil, err
	}
	return dirs, nil
}

func (d *directoryService) UpdateDirectory(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error) {
	dir, err := d.directoryRepository.UpdateDirectory(ctx, username, directoryID, patch)
	if err != nil {
		logRepositoryError(ctx, "*directoryService.UpdateDirectory", username, err)
		return models.Directory{}, err
	}
	return dir, nil
}

func (d *directoryService) DeleteDirectory(ctx context.Context, username, directoryID string) error {
	if err := d.directoryRepository.DeleteDirectory(ctx, username, directoryID); err != nil {
		logRepositoryError(ctx, "*directoryService.DeleteDirectory", username, err)
		return err
	}
	return nil
}
