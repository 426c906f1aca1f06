package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/backmeup/credstore/models"
)

const (
	seedUser = `INSERT INTO backmeup_system.users (username, email, password, full_name, role, is_active)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (username) DO NOTHING;`

	findUserByUsername = `SELECT id, username, email, password, full_name, created_at, last_login, is_active, role
    FROM backmeup_system.users
    WHERE username = $1;`

	updateLastLogin = `UPDATE backmeup_system.users
    SET last_login = now()
    WHERE id = $1;`

	setUserActive = `UPDATE backmeup_system.users
    SET is_active = $2
    WHERE username = $1;`

	deleteUser = `DELETE FROM backmeup_system.users
    WHERE username = $1;`

	grantPermission = `INSERT INTO backmeup_system.user_permissions (username, database_name, permission_type)
    VALUES ($1, $2, $3)
    ON CONFLICT (username, database_name, permission_type) DO NOTHING;`

	revokePermission = `DELETE FROM backmeup_system.user_permissions
    WHERE username = $1 AND database_name = $2 AND permission_type = $3;`

	hasPermission = `SELECT count(*)
    FROM backmeup_system.user_permissions
    WHERE username = $1 AND database_name = $2 AND permission_type = $3;`
)

// userColumns is the canonical column order shared by every query that scans
// a full user row.
var userColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"full_name",
	"created_at",
	"last_login",
	"is_active",
	"role",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildCreateUserQuery builds the registration INSERT. The role column is
// included only when set, so omitted roles fall through to the schema's
// DEFAULT 'user'.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	columns := []string{"username", "email", "password", "full_name", "is_active"}
	values := []any{user.Username, user.Email, user.Password, user.FullName, user.IsActive}

	if user.Role != "" {
		columns = append(columns, "role")
		values = append(values, user.Role)
	}

	return psql.
		Insert(models.User{}.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// buildListActiveUsersQuery builds the users-page listing: active accounts
// ordered by username. The (is_active, username) composite index serves it.
func buildListActiveUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("username").
		ToSql()
}

// buildListUserPermissionsQuery builds the per-user permission listing,
// optionally narrowed to a single database.
func buildListUserPermissionsQuery(username, database string) (string, []any, error) {
	q := psql.
		Select("id", "username", "database_name", "permission_type", "granted_at").
		From(models.Permission{}.TableName()).
		Where(squirrel.Eq{"username": username})

	if database != "" {
		q = q.Where(squirrel.Eq{"database_name": database})
	}

	return q.OrderBy("database_name", "permission_type").ToSql()
}
