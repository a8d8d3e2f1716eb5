// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/models"
)

// UserRepository is the identity store: it maps a username to the digest of
// its single active token.
type UserRepository interface {
	// Login stores tokenHash as the only valid token of username, creating
	// the account when it does not exist yet. isNew reports whether the
	// account was created by this call. Unknown usernames fail with
	// ErrUserLimitReached once the user cap is reached.
	Login(ctx context.Context, username, tokenHash string) (isNew bool, err error)

	// FindUserByToken resolves a token digest to its owner or returns
	// ErrNoUserWasFound.
	FindUserByToken(ctx context.Context, tokenHash string) (models.User, error)
}

// DirectoryRepository stores directories scoped by username.
type DirectoryRepository interface {
	CreateDirectory(ctx context.Context, username string, dir models.Directory) error
	ListDirectories(ctx context.Context, username string) ([]models.Directory, error)
	UpdateDirectory(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error)
	// DeleteDirectory removes the directory and every state inside it atomically.
	DeleteDirectory(ctx context.Context, username, directoryID string) error
}

// StateRepository stores states scoped by username. Every state references
// an existing directory of the same user.
type StateRepository interface {
	CreateState(ctx context.Context, username string, state models.State) error
	GetState(ctx context.Context, username, stateID string) (models.State, error)
	// ListStates returns all states of the user, or only those inside
	// directoryID when it is not empty.
	ListStates(ctx context.Context, username, directoryID string) ([]models.State, error)
	UpdateState(ctx context.Context, username, stateID string, patch models.StatePatch) (models.State, error)
	DeleteState(ctx context.Context, username, stateID string) error
}

// SyncRepository replaces or loads the complete data set of one user.
type SyncRepository interface {
	// ReplaceAll deletes every directory and state of username and inserts
	// the given ones in a single transaction.
	ReplaceAll(ctx context.Context, username string, dirs []models.Directory, states []models.State) error
	LoadAll(ctx context.Context, username string) (models.Snapshot, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
