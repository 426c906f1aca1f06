package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/backmeup/credstore/models"
)

// UserRepository is the data-access contract for the backmeup_system.users
// table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (ID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// SeedUser performs the insert-or-no-op upsert of the administrative seed
	// row, keyed on the username's uniqueness constraint. It reports whether
	// a row was actually inserted.
	SeedUser(ctx context.Context, user models.User) (bool, error)

	// FindUserByUsername returns the account with the given username,
	// regardless of its is_active state.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListActiveUsers returns all accounts with is_active = true, ordered by
	// username.
	ListActiveUsers(ctx context.Context) ([]models.User, error)

	// UpdateLastLogin stamps last_login with the database's current time.
	UpdateLastLogin(ctx context.Context, userID int64) error

	// SetUserActive flips the is_active flag; deactivation is the soft-delete
	// mechanism.
	SetUserActive(ctx context.Context, username string, active bool) error

	// DeleteUser removes the account and, via ON DELETE CASCADE, all of its
	// permission grants.
	DeleteUser(ctx context.Context, username string) error
}

// PermissionRepository is the data-access contract for the
// backmeup_system.user_permissions table.
type PermissionRepository interface {
	// Grant records that username may perform the given operation type on the
	// given database. Granting an existing permission is a no-op.
	Grant(ctx context.Context, p models.Permission) error

	// Revoke removes a grant. Revoking an absent grant is a no-op.
	Revoke(ctx context.Context, p models.Permission) error

	// HasPermission reports whether the grant exists. Checks read fresh state
	// on every call so admin changes take effect immediately.
	HasPermission(ctx context.Context, username, database, permissionType string) (bool, error)

	// ListUserPermissions returns all grants for username; database narrows
	// the result to one database when non-empty.
	ListUserPermissions(ctx context.Context, username, database string) ([]models.Permission, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
