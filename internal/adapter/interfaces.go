// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the fretboard-keeper HTTP API.
//
// [ServerAdapter] covers every endpoint a client needs: login and token
// verification, bulk save and load, and per-item directory and state calls.
// Non-2xx responses are mapped to the sentinel errors in errors.go, so
// callers can branch with [errors.Is] (e.g. [ErrUnauthorized] means the
// token was superseded by a newer login).
package adapter

import (
	"context"

	"github.com/MKhiriev/fretboard-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the fretboard-keeper server.
// Implementations attach the bearer token set by SetToken to every call
// except Login.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	// Login signs username in (creating the account on first use) and stores
	// the issued token via SetToken.
	Login(ctx context.Context, username string) (models.LoginResponse, error)

	// Verify reports the owner of the current token. A stale token yields
	// ErrUnauthorized.
	Verify(ctx context.Context) (models.VerifyResponse, error)

	// Save replaces everything stored for the user with req.
	Save(ctx context.Context, req models.ReplaceRequest) (models.SaveResponse, error)

	// Load fetches every directory and state of the user.
	Load(ctx context.Context) (models.LoadResponse, error)

	ListDirectories(ctx context.Context) ([]models.Directory, error)
	CreateDirectory(ctx context.Context, dir models.Directory) (models.Directory, error)
	UpdateDirectory(ctx context.Context, directoryID string, patch models.DirectoryPatch) (models.Directory, error)
	DeleteDirectory(ctx context.Context, directoryID string) error

	// ListStates returns the states of directoryID, or all states when it is
	// empty.
	ListStates(ctx context.Context, directoryID string) ([]models.State, error)
	CreateState(ctx context.Context, state models.State) (models.State, error)
	GetState(ctx context.Context, stateID string) (models.State, error)
	UpdateState(ctx context.Context, stateID string, patch models.StatePatch) (models.State, error)
	DeleteState(ctx context.Context, stateID string) error
}
