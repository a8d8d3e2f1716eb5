package service

//go:generate mockgen -source=interfaces.go -destination=../handler/http/service_mock_test.go -package=http

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/models"
)

// AuthService issues session tokens and resolves them back to usernames.
type AuthService interface {
	// Login validates username, mints a fresh token and stores its digest as
	// the only valid token of the user. The account is created on first
	// login while the user cap allows it.
	Login(ctx context.Context, username string) (models.Session, error)

	// Authenticate returns the owner of token or ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (string, error)
}

type DirectoryService interface {
	CreateDirectory(ctx context.Context, username string, dir models.Directory) (models.Directory, error)
	ListDirectories(ctx context.Context, username string) ([]models.Directory, error)
	UpdateDirectory(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error)
	DeleteDirectory(ctx context.Context, username, directoryID string) error
}

type StateService interface {
	CreateState(ctx context.Context, username string, state models.State) (models.State, error)
	GetState(ctx context.Context, username, stateID string) (models.State, error)
	ListStates(ctx context.Context, username, directoryID string) ([]models.State, error)
	UpdateState(ctx context.Context, username, stateID string, patch models.StatePatch) (models.State, error)
	DeleteState(ctx context.Context, username, stateID string) error
}

// SyncService moves the complete data set of a user in one step.
type SyncService interface {
	// ReplaceAll validates req as a whole and, only if it is acceptable,
	// swaps the user's directories and states for the ones in req.
	ReplaceAll(ctx context.Context, username string, req models.ReplaceRequest) (models.ReplaceResult, error)
	LoadAll(ctx context.Context, username string) (models.Snapshot, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DirectoryServiceWrapper defines middleware composition for DirectoryService.
// Implementations wrap an existing DirectoryService to add behavior such as
// validation.
type DirectoryServiceWrapper interface {
	Wrap(DirectoryService) DirectoryService
}

// StateServiceWrapper defines middleware composition for StateService.
type StateServiceWrapper interface {
	Wrap(StateService) StateService
}
