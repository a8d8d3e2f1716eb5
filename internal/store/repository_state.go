package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
	"github.com/jackc/pgerrcode"
)

// stateRepository is the PostgreSQL-backed implementation of
// [StateRepository] over the "states" table.
type stateRepository struct {
	db     *DB
	limits config.Limits
	logger *logger.Logger
}

// NewStateRepository constructs a [StateRepository].
func NewStateRepository(db *DB, limits config.Limits, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		db:     db,
		limits: limits,
		logger: logger,
	}
}

// CreateState inserts state for username under the per-user lock.
//
// Checks, in order: duplicate id → [ErrStateAlreadyExists]; unknown parent
// directory → [ErrDirectoryNotFound]; full directory → [ErrStateLimitReached].
func (r *stateRepository) CreateState(ctx context.Context, username string, state models.State) error {
	log := logger.FromContext(ctx)

	err := r.db.inUserTx(ctx, username, func(ctx context.Context, tx DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, stateExists, username, state.ID).Scan(&exists); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if exists {
			return ErrStateAlreadyExists
		}

		if err := r.checkParent(ctx, tx, username, state.DirectoryID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, createState,
			username,
			state.ID,
			state.DirectoryID,
			state.Name,
			state.Timestamp,
			state.Thumbnail,
			string(state.Payload),
			state.CreatedTime(),
		)
		if err != nil {
			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return ErrStateAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				return ErrDirectoryNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*stateRepository.CreateState").
			Str("state_id", state.ID).
			Str("directory_id", state.DirectoryID).
			Msg("state was not created")
		return err
	}

	return nil
}

// GetState returns one state of username or [ErrStateNotFound].
func (r *stateRepository) GetState(ctx context.Context, username, stateID string) (models.State, error) {
	log := logger.FromContext(ctx)

	state, err := scanState(r.db.QueryRowContext(ctx, getState, username, stateID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.State{}, ErrStateNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.GetState").Str("state_id", stateID).Msg("failed to get state")
		return models.State{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}

// ListStates returns the states of username, optionally limited to one
// directory. An unknown directory yields an empty list.
func (r *stateRepository) ListStates(ctx context.Context, username, directoryID string) ([]models.State, error) {
	return listStates(ctx, r.db, username, directoryID)
}

// UpdateState applies patch under the per-user lock.
//
// When the patch moves the state, the target directory must exist and have
// room; otherwise the state is left untouched.
func (r *stateRepository) UpdateState(ctx context.Context, username, stateID string, patch models.StatePatch) (models.State, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStateQuery(ctx, username, stateID, patch)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.UpdateState").Msg("failed to create query")
		return models.State{}, err
	}

	var updated models.State
	err = r.db.inUserTx(ctx, username, func(ctx context.Context, tx DBTX) error {
		var currentDirectory string
		err := tx.QueryRowContext(ctx, getStateDirectoryForUpdate, username, stateID).Scan(&currentDirectory)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStateNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if patch.DirectoryID != nil && *patch.DirectoryID != currentDirectory {
			if err = r.checkParent(ctx, tx, username, *patch.DirectoryID); err != nil {
				return err
			}
		}

		updated, err = scanState(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStateNotFound
		}
		if err != nil {
			if postgresError(err) == pgerrcode.ForeignKeyViolation {
				return ErrDirectoryNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*stateRepository.UpdateState").
			Str("state_id", stateID).
			Msg("state was not updated")
		return models.State{}, err
	}

	return updated, nil
}

// DeleteState removes one state. No matching row → [ErrStateNotFound].
func (r *stateRepository) DeleteState(ctx context.Context, username, stateID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteState, username, stateID)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.DeleteState").Str("state_id", stateID).Msg("failed to delete state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrStateNotFound
	}

	return nil
}

// checkParent verifies that directoryID exists for username and can take one
// more state.
func (r *stateRepository) checkParent(ctx context.Context, tx DBTX, username, directoryID string) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, directoryExists, username, directoryID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrDirectoryNotFound, directoryID)
	}

	var total int
	if err := tx.QueryRowContext(ctx, countDirectoryStates, username, directoryID).Scan(&total); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if total >= r.limits.MaxStatesPerDirectory {
		return fmt.Errorf("%w: directory %q already holds %d states", ErrStateLimitReached, directoryID, total)
	}

	return nil
}

func listStates(ctx context.Context, db DBTX, username, directoryID string) ([]models.State, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStatesQuery(ctx, username, directoryID)
	if err != nil {
		log.Err(err).Str("func", "listStates").Msg("failed to create query")
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "listStates").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.State, 0, 50)
	for rows.Next() {
		state, scanErr := scanState(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "listStates").Msg("failed to scan state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, state)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "listStates").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

func scanState(row rowScanner) (models.State, error) {
	var state models.State
	var thumbnail sql.NullString
	var payload []byte

	if err := row.Scan(&state.ID, &state.DirectoryID, &state.Name, &state.Timestamp, &thumbnail, &payload); err != nil {
		return models.State{}, err
	}
	if thumbnail.Valid {
		state.Thumbnail = &thumbnail.String
	}
	state.Payload = payload

	return state, nil
}
