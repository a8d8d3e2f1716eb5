package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrLimitExceeded       = errors.New("limit exceeded")

	ErrUserLimitExceeded = errors.New("user limit reached, no new accounts can be created")
	ErrUnauthorized      = errors.New("invalid or missing token")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// validationError classifies a validator failure: cap violations become
// ErrLimitExceeded, everything else ErrInvalidDataProvided.
func validationError(err error) error {
	if errors.Is(err, validators.ErrTooManyDirectories) || errors.Is(err, validators.ErrTooManyStates) {
		return fmt.Errorf("%w: %w", ErrLimitExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

// rejections are repository outcomes caused by the request itself.
var rejections = []error{
	store.ErrDirectoryAlreadyExists,
	store.ErrDirectoryNotFound,
	store.ErrDirectoryLimitReached,
	store.ErrStateAlreadyExists,
	store.ErrStateNotFound,
	store.ErrStateLimitReached,
}

// logRepositoryError logs a failed repository call. Rejections go to debug,
// storage failures to error.
func logRepositoryError(ctx context.Context, fn, username string, err error) {
	log := logger.FromContext(ctx)
	for _, target := range rejections {
		if errors.Is(err, target) {
			log.Debug().Err(err).Str("func", fn).Str("username", username).Msg("request rejected by repository")
			return
		}
	}
	log.Err(err).Str("func", fn).Str("username", username).Msg("repository call failed")
}
