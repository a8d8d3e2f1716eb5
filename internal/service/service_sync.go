package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/internal/validators"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// syncService is the concrete implementation of SyncService.
//
// The whole request is validated before the repository is touched, so a
// rejected replace never changes stored data.
type syncService struct {
	syncRepository store.SyncRepository
	validator      validators.Validator

	// now is replaceable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs a SyncService that enforces limits on every
// replace.
func NewSyncService(syncRepository store.SyncRepository, limits config.Limits, logger *logger.Logger) SyncService {
	return &syncService{
		syncRepository: syncRepository,
		validator:      validators.NewDataValidator(limits),
		now:            time.Now,
		logger:         logger,
	}
}

// ReplaceAll implements SyncService.
//
// Validation order: directory count, per-directory state counts, then
// references from states to directories in the same request. The first
// failure is returned as ErrLimitExceeded or ErrInvalidDataProvided.
func (s *syncService) ReplaceAll(ctx context.Context, username string, req models.ReplaceRequest) (models.ReplaceResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).
			Str("func", "*syncService.ReplaceAll").
			Int("directories", len(req.Directories)).
			Int("states", len(req.States)).
			Msg("replace request rejected")
		return models.ReplaceResult{}, validationError(err)
	}

	if err := s.syncRepository.ReplaceAll(ctx, username, req.Directories, req.States); err != nil {
		return models.ReplaceResult{}, err
	}

	return models.ReplaceResult{
		SavedDirectoryCount: len(req.Directories),
		SavedStateCount:     len(req.States),
		SavedAt:             s.now().UTC(),
	}, nil
}

// LoadAll returns every directory and state of username. A user without data
// gets empty, non-nil slices.
func (s *syncService) LoadAll(ctx context.Context, username string) (models.Snapshot, error) {
	snapshot, err := s.syncRepository.LoadAll(ctx, username)
	if err != nil {
		return models.Snapshot{}, err
	}

	if snapshot.Directories == nil {
		snapshot.Directories = []models.Directory{}
	}
	if snapshot.States == nil {
		snapshot.States = []models.State{}
	}

	return snapshot, nil
}
