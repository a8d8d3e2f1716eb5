// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
	"github.com/jackc/pgerrcode"
)

// directoryRepository is the PostgreSQL-backed implementation of
// [DirectoryRepository] over the "directories" table.
type directoryRepository struct {
	db     *DB
	limits config.Limits
	logger *logger.Logger
}

// NewDirectoryRepository constructs a [DirectoryRepository].
func NewDirectoryRepository(db *DB, limits config.Limits, logger *logger.Logger) DirectoryRepository {
	logger.Debug().Msg("creating directory repository")
	return &directoryRepository{
		db:     db,
		limits: limits,
		logger: logger,
	}
}

// CreateDirectory inserts dir for username under the per-user lock.
//
// Checks, in order: duplicate id → [ErrDirectoryAlreadyExists];
// directory cap → [ErrDirectoryLimitReached].
func (r *directoryRepository) CreateDirectory(ctx context.Context, username string, dir models.Directory) error {
	log := logger.FromContext(ctx)

	err := r.db.inUserTx(ctx, username, func(ctx context.Context, tx DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, directoryExists, username, dir.ID).Scan(&exists); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if exists {
			return ErrDirectoryAlreadyExists
		}

		var total int
		if err := tx.QueryRowContext(ctx, countUserDirectories, username).Scan(&total); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if total >= r.limits.MaxDirectoriesPerUser {
			return fmt.Errorf("%w: limit is %d", ErrDirectoryLimitReached, r.limits.MaxDirectoriesPerUser)
		}

		_, err := tx.ExecContext(ctx, createDirectory, username, dir.ID, dir.Name, dir.IsDefault, dir.CreatedTime())
		if err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrDirectoryAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*directoryRepository.CreateDirectory").
			Str("directory_id", dir.ID).
			Msg("directory was not created")
		return err
	}

	return nil
}

// ListDirectories returns every directory of username ordered by creation time.
func (r *directoryRepository) ListDirectories(ctx context.Context, username string) ([]models.Directory, error) {
	return listDirectories(ctx, r.db, username)
}

// UpdateDirectory applies patch in a single UPDATE … RETURNING statement.
// No matching row → [ErrDirectoryNotFound].
func (r *directoryRepository) UpdateDirectory(ctx context.Context, username, directoryID string, patch models.DirectoryPatch) (models.Directory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDirectoryQuery(ctx, username, directoryID, patch)
	if err != nil {
		log.Err(err).Str("func", "*directoryRepository.UpdateDirectory").Msg("failed to create query")
		return models.Directory{}, err
	}

	dir, err := scanDirectory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Directory{}, ErrDirectoryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*directoryRepository.UpdateDirectory").
			Str("directory_id", directoryID).
			Msg("failed to update directory")
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return dir, nil
}

// DeleteDirectory removes the states of the directory and then the directory
// itself inside one transaction, so either both are gone or neither is.
func (r *directoryRepository) DeleteDirectory(ctx context.Context, username, directoryID string) error {
	log := logger.FromContext(ctx)

	var removedStates int64
	err := r.db.inUserTx(ctx, username, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, deleteDirectoryStates, username, directoryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if removedStates, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		res, err = tx.ExecContext(ctx, deleteDirectory, username, directoryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrDirectoryNotFound
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDirectoryNotFound) {
			log.Err(err).
				Str("func", "*directoryRepository.DeleteDirectory").
				Str("directory_id", directoryID).
				Msg("failed to delete directory")
		}
		return err
	}

	log.Debug().
		Str("func", "*directoryRepository.DeleteDirectory").
		Str("directory_id", directoryID).
		Int64("removed_states", removedStates).
		Msg("directory deleted")

	return nil
}

func listDirectories(ctx context.Context, db DBTX, username string) ([]models.Directory, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, listUserDirectories, username)
	if err != nil {
		log.Err(err).Str("func", "listDirectories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dirs := make([]models.Directory, 0, 16)
	for rows.Next() {
		dir, scanErr := scanDirectory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "listDirectories").Msg("failed to scan directory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		dirs = append(dirs, dir)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "listDirectories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dirs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDirectory(row rowScanner) (models.Directory, error) {
	var dir models.Directory
	var createdAt time.Time

	if err := row.Scan(&dir.ID, &dir.Name, &dir.IsDefault, &createdAt); err != nil {
		return models.Directory{}, err
	}
	dir.CreatedAt = createdAt.UnixMilli()

	return dir, nil
}
