// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/internal/validators"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// tokenGenerator produces opaque session tokens.
type tokenGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// Tokens are random UUIDs; only their BLAKE2b digest reaches the
// UserRepository, so the raw value exists only in the login response.
type authService struct {
	// userRepository stores the username → token digest mapping.
	userRepository store.UserRepository

	// validator checks usernames before anything is written.
	validator validators.Validator

	// tokens mints the raw token returned to the client.
	tokens tokenGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokens:         utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Login signs username in and returns a session with a fresh token.
//
// Every call replaces the previous token of the user, so at most one session
// is valid at a time.
//
// Returns:
//   - ErrInvalidDataProvided if username is malformed.
//   - ErrUserLimitExceeded if username is unknown and the user cap is reached.
//   - A wrapped storage error otherwise.
func (a *authService) Login(ctx context.Context, username string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, username); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("username", username).Msg("invalid username")
		return models.Session{}, validationError(err)
	}

	token := a.tokens.Generate()
	if token == "" {
		return models.Session{}, ErrTokenCreationFailed
	}

	isNew, err := a.userRepository.Login(ctx, username, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrUserLimitReached) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrUserLimitExceeded, err)
		}
		log.Err(err).Str("func", "*authService.Login").Str("username", username).Msg("login failed")
		return models.Session{}, fmt.Errorf("login failed: %w", err)
	}

	log.Info().
		Str("func", "*authService.Login").
		Str("username", username).
		Bool("is_new_user", isNew).
		Msg("user logged in")

	return models.Session{
		Username:  username,
		Token:     token,
		IsNewUser: isNew,
	}, nil
}

// Authenticate resolves token to its owner.
//
// Any failure to find the owner, including an empty token, is reported as
// ErrUnauthorized. Storage failures are returned wrapped so that callers can
// tell an outage from a bad credential.
func (a *authService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("token lookup failed: %w", err)
	}

	return user.Username, nil
}
