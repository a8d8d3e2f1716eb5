package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, token rotation and token lookup against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	limits config.Limits
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, limits config.Limits, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		limits: limits,
		logger: logger,
	}
}

// Login rotates the token of an existing user or registers a new one.
//
// The common case (a known username) is a single UPDATE. Only when it
// matches nothing is the registration lock taken; the UPDATE is repeated
// under the lock because a concurrent login may have created the user in
// the meantime. Then the cap is checked and the user inserted.
//
// Exactly one row is written per call.
func (r *userRepository) Login(ctx context.Context, username, tokenHash string) (bool, error) {
	log := logger.FromContext(ctx)

	var isNew bool
	err := r.db.inTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		isNew = false

		refreshed, err := refreshToken(ctx, tx, username, tokenHash)
		if err != nil || refreshed {
			return err
		}

		if err = lock(ctx, tx, registrationLockKey); err != nil {
			return err
		}

		if refreshed, err = refreshToken(ctx, tx, username, tokenHash); err != nil || refreshed {
			return err
		}

		var total int
		if err = tx.QueryRowContext(ctx, countUsers).Scan(&total); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if total >= r.limits.MaxUsers {
			return ErrUserLimitReached
		}

		if _, err = tx.ExecContext(ctx, createUser, username, tokenHash); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		isNew = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserLimitReached) {
			log.Warn().
				Str("func", "*userRepository.Login").
				Str("username", username).
				Int("max_users", r.limits.MaxUsers).
				Msg("user cap reached, registration rejected")
			return false, err
		}

		log.Err(err).
			Str("func", "*userRepository.Login").
			Str("username", username).
			Msg("login transaction failed")
		return false, err
	}

	log.Debug().
		Str("func", "*userRepository.Login").
		Str("username", username).
		Bool("is_new", isNew).
		Msg("token stored")

	return isNew, nil
}

// FindUserByToken looks up the owner of a token digest.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByToken(ctx context.Context, tokenHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, findUserByTokenHash, tokenHash).
		Scan(&user.Username, &user.TokenHash, &user.CreatedAt, &user.LastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByToken").Msg("error looking up token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// refreshToken overwrites the token of username and reports whether the user
// exists.
func refreshToken(ctx context.Context, tx DBTX, username, tokenHash string) (bool, error) {
	res, err := tx.ExecContext(ctx, refreshUserToken, username, tokenHash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
