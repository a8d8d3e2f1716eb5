// Package migrations holds the embedded goose migrations of the PostgreSQL
// schema and the helper that applies them at startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate creates schema if it is missing and applies every pending migration.
//
// Tables are created unqualified, so the connection must already resolve
// names to schema (search_path). The goose version table lives there too.
func Migrate(ctx context.Context, db *sql.DB, schema string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	if schema != "" {
		createSchema := "CREATE SCHEMA IF NOT EXISTS " + pgx.Identifier{schema}.Sanitize()
		if _, err := db.ExecContext(ctx, createSchema); err != nil {
			return fmt.Errorf("migration error creating schema %q: %w", schema, err)
		}
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
