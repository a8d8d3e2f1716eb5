package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
)

// syncRepository implements [SyncRepository]: whole-data-set replace and load
// for one user.
type syncRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository].
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll wipes the user's states and directories and inserts the given
// sets with one multi-row INSERT each. Everything happens in one transaction
// under the per-user lock; a failed insert leaves the old data in place.
//
// Limits and cross references are expected to be validated by the caller.
func (r *syncRepository) ReplaceAll(ctx context.Context, username string, dirs []models.Directory, states []models.State) error {
	log := logger.FromContext(ctx)

	err := r.db.inUserTx(ctx, username, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteAllUserStates, username); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if _, err := tx.ExecContext(ctx, deleteAllUserDirectories, username); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if len(dirs) > 0 {
			query, args, err := buildInsertDirectoriesQuery(ctx, username, dirs)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		if len(states) > 0 {
			query, args, err := buildInsertStatesQuery(ctx, username, states)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*syncRepository.ReplaceAll").
			Int("directories", len(dirs)).
			Int("states", len(states)).
			Msg("replace transaction failed")
		return err
	}

	log.Info().
		Str("func", "*syncRepository.ReplaceAll").
		Int("directories", len(dirs)).
		Int("states", len(states)).
		Msg("user data replaced")

	return nil
}

// LoadAll reads directories and states from one consistent snapshot.
func (r *syncRepository) LoadAll(ctx context.Context, username string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	var snapshot models.Snapshot
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

	err := r.db.inTx(ctx, opts, func(ctx context.Context, tx DBTX) error {
		dirs, err := listDirectories(ctx, tx, username)
		if err != nil {
			return err
		}
		states, err := listStates(ctx, tx, username, "")
		if err != nil {
			return err
		}

		snapshot = models.Snapshot{Directories: dirs, States: states}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*syncRepository.LoadAll").Msg("failed to load user data")
		return models.Snapshot{}, err
	}

	return snapshot, nil
}
