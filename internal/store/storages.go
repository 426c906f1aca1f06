package store

import (
	"context"

	"github.com/backmeup/credstore/internal/config"
	"github.com/backmeup/credstore/internal/logger"
)

// Storages bundles every repository together with the connection they share.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	PermissionRepository PermissionRepository
}

// NewStorages connects to PostgreSQL and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		PermissionRepository: NewPermissionRepository(db, log),
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
