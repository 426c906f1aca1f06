package service

import (
	"context"
	"fmt"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/store"
	"github.com/backmeup/credstore/models"
)

// permissionService is the concrete implementation of PermissionService.
//
// Every check queries the permission table fresh, so changes made by an admin
// take effect immediately. Any error during a check results in a denial.
type permissionService struct {
	// permissionRepository is the data-access layer for permission grants.
	permissionRepository store.PermissionRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPermissionService constructs a new PermissionService wired to the given
// PermissionRepository.
func NewPermissionService(permissionRepository store.PermissionRepository, logger *logger.Logger) PermissionService {
	return &permissionService{
		permissionRepository: permissionRepository,
		logger:               logger,
	}
}

// checkPermission answers whether user may perform permissionType on database.
// Admin and superadmin roles bypass the table entirely. Errors deny.
func (p *permissionService) checkPermission(ctx context.Context, user models.User, database, permissionType string) bool {
	log := logger.FromContext(ctx)

	if user.IsAdmin() {
		log.Debug().Str("username", user.Username).
			Str("database", database).
			Str("type", permissionType).
			Msg("admin bypass")
		return true
	}

	granted, err := p.permissionRepository.HasPermission(ctx, user.Username, database, permissionType)
	if err != nil {
		// Deny on error: a failed check must never widen access.
		log.Err(err).Str("username", user.Username).
			Str("database", database).
			Str("type", permissionType).
			Msg("permission check failed, denying")
		return false
	}

	return granted
}

// CanCreateDatabase reports whether user may create new databases.
// Creating databases is reserved for admins; there is no per-database grant
// that covers an object which does not exist yet.
func (p *permissionService) CanCreateDatabase(ctx context.Context, user models.User) bool {
	return user.IsAdmin()
}

// CanDropDatabase reports whether user may drop the database.
func (p *permissionService) CanDropDatabase(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionDelete)
}

// CanCreateTable reports whether user may create tables in the database.
func (p *permissionService) CanCreateTable(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionCreate)
}

// CanDropTable reports whether user may drop tables in the database.
func (p *permissionService) CanDropTable(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionDelete)
}

// CanInsert reports whether user may insert rows into the database.
func (p *permissionService) CanInsert(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionInsert)
}

// CanUpdate reports whether user may update rows in the database.
func (p *permissionService) CanUpdate(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionUpdate)
}

// CanDelete reports whether user may delete rows from the database.
func (p *permissionService) CanDelete(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionDelete)
}

// CanBackup always allows: backups only read the database.
func (p *permissionService) CanBackup(ctx context.Context, user models.User, database string) bool {
	return true
}

// CanRestore reports whether user may restore the database. Restoring
// creates and overwrites objects, so it requires the CREATE grant.
func (p *permissionService) CanRestore(ctx context.Context, user models.User, database string) bool {
	return p.checkPermission(ctx, user, database, models.PermissionCreate)
}

// Grant records a permission for a user.
func (p *permissionService) Grant(ctx context.Context, perm models.Permission) error {
	log := logger.FromContext(ctx)

	if err := p.permissionRepository.Grant(ctx, perm); err != nil {
		log.Err(err).Str("username", perm.Username).Msg("granting permission ended with error")
		return fmt.Errorf("granting permission ended with error: %w", err)
	}

	return nil
}

// Revoke removes a permission from a user.
func (p *permissionService) Revoke(ctx context.Context, perm models.Permission) error {
	log := logger.FromContext(ctx)

	if err := p.permissionRepository.Revoke(ctx, perm); err != nil {
		log.Err(err).Str("username", perm.Username).Msg("revoking permission ended with error")
		return fmt.Errorf("revoking permission ended with error: %w", err)
	}

	return nil
}

// UserPermissions lists the grants held by username, narrowed to one database
// when database is non-empty.
func (p *permissionService) UserPermissions(ctx context.Context, username, database string) ([]models.Permission, error) {
	log := logger.FromContext(ctx)

	permissions, err := p.permissionRepository.ListUserPermissions(ctx, username, database)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing permissions ended with error")
		return nil, fmt.Errorf("listing permissions ended with error: %w", err)
	}

	return permissions, nil
}
