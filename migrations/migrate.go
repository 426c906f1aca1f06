// Package migrations holds the embedded goose migration set for the
// backmeup_system schema: the users table, its uniqueness constraints and
// lookup indexes, and the user_permissions table.
//
// Seed data is deliberately not part of the migration set; it lives in the
// bootstrap package so schema shape and seed content can be tested
// independently.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. Re-running against an
// up-to-date database is a no-op.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
