package store

import (
	"context"
	"fmt"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/models"
	"github.com/jackc/pgerrcode"
)

// permissionRepository is the PostgreSQL-backed implementation of
// [PermissionRepository] over the backmeup_system.user_permissions table.
type permissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPermissionRepository constructs a [PermissionRepository] backed by the
// provided database connection and logger.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

// Grant records a permission. Granting an already-present permission is a
// no-op thanks to the ON CONFLICT guard on the composite uniqueness
// constraint.
//
// Error handling:
//   - Unknown permission type → [ErrInvalidPermissionType] before any SQL runs.
//   - foreign_key_violation (no such user) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *permissionRepository) Grant(ctx context.Context, p models.Permission) error {
	log := logger.FromContext(ctx)

	if !models.ValidPermissionType(p.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidPermissionType, p.Type)
	}

	_, err := r.db.ExecContext(ctx, grantPermission, p.Username, p.DatabaseName, p.Type)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.Grant").
			Str("username", p.Username).
			Str("database", p.DatabaseName).
			Str("type", p.Type).
			Bool("retryable", r.db.retryable(err)).
			Msg("error granting permission")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}

		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Revoke removes a permission. Revoking an absent permission is a no-op.
func (r *permissionRepository) Revoke(ctx context.Context, p models.Permission) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, revokePermission, p.Username, p.DatabaseName, p.Type)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.Revoke").
			Str("username", p.Username).
			Str("database", p.DatabaseName).
			Str("type", p.Type).
			Msg("error revoking permission")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// HasPermission reports whether the grant exists. It queries fresh state on
// every call, so a grant or revoke by an admin takes effect immediately.
func (r *permissionRepository) HasPermission(ctx context.Context, username, database, permissionType string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, hasPermission, username, database, permissionType)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*permissionRepository.HasPermission").
			Str("username", username).
			Str("database", database).
			Str("type", permissionType).
			Bool("retryable", r.db.retryable(err)).
			Msg("error checking permission")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}

// ListUserPermissions returns all grants for username, narrowed to a single
// database when database is non-empty.
func (r *permissionRepository) ListUserPermissions(ctx context.Context, username, database string) ([]models.Permission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserPermissionsQuery(username, database)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.ListUserPermissions").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*permissionRepository.ListUserPermissions").Str("username", username).Msg("error listing permissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var permissions []models.Permission
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Username, &p.DatabaseName, &p.Type, &p.GrantedAt); err != nil {
			log.Err(err).Str("func", "*permissionRepository.ListUserPermissions").Msg("error scanning permission row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return permissions, nil
}
