package service

import (
	"context"

	"github.com/backmeup/credstore/models"
)

type AuthService interface {
	// Register creates a new account with the given plaintext password. The
	// password is bcrypt-hashed before it reaches the repository; the role
	// defaults to "user" when unset.
	Register(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies the credentials against the stored bcrypt hash. Inactive
	// accounts are rejected. On success the account's last_login is stamped.
	Login(ctx context.Context, username, password string) (models.User, error)
}

// PermissionService answers can-this-user-do-that questions for database
// operations. Checks read fresh state on every call, so a grant or revoke by
// an admin takes effect immediately. Admin and superadmin roles bypass all
// per-database grants.
type PermissionService interface {
	CanCreateDatabase(ctx context.Context, user models.User) bool
	CanDropDatabase(ctx context.Context, user models.User, database string) bool
	CanCreateTable(ctx context.Context, user models.User, database string) bool
	CanDropTable(ctx context.Context, user models.User, database string) bool
	CanInsert(ctx context.Context, user models.User, database string) bool
	CanUpdate(ctx context.Context, user models.User, database string) bool
	CanDelete(ctx context.Context, user models.User, database string) bool
	CanBackup(ctx context.Context, user models.User, database string) bool
	CanRestore(ctx context.Context, user models.User, database string) bool

	Grant(ctx context.Context, p models.Permission) error
	Revoke(ctx context.Context, p models.Permission) error
	UserPermissions(ctx context.Context, username, database string) ([]models.Permission, error)
}
