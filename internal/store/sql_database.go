package store

import (
	"database/sql"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/migrations"
)

// DB wraps *sql.DB with the application's logger and an error classifier for
// the underlying engine. All repositories operate through this type.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations to the wrapped connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// retryable reports whether err is classified as transient. Used to annotate
// error logs so operators can tell connection blips from real failures.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}
