package store

import (
	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
)

// Storages aggregates every repository built on one connection pool.
type Storages struct {
	UserRepository      UserRepository
	DirectoryRepository DirectoryRepository
	StateRepository     StateRepository
	SyncRepository      SyncRepository

	db *DB
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, limits config.Limits, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, limits, log),
		DirectoryRepository: NewDirectoryRepository(db, limits, log),
		StateRepository:     NewStateRepository(db, limits, log),
		SyncRepository:      NewSyncRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
