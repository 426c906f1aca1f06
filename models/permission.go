package models

import "time"

// Permission types stored in the user_permissions.permission_type column.
// The set mirrors the operations the management UI can gate per database.
const (
	PermissionInsert = "INSERT"
	PermissionDelete = "DELETE"
	PermissionUpdate = "UPDATE"
	PermissionCreate = "CREATE"
)

// PermissionTypes lists every valid permission_type value.
var PermissionTypes = []string{
	PermissionInsert,
	PermissionDelete,
	PermissionUpdate,
	PermissionCreate,
}

// ValidPermissionType reports whether t is one of the permission_type
// values accepted by the schema's CHECK constraint.
func ValidPermissionType(t string) bool {
	for _, known := range PermissionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Permission represents a single grant in the backmeup_system.user_permissions
// table: one user may perform one operation type on one database.
type Permission struct {
	ID           int64     `json:"-"`
	Username     string    `json:"username"`
	DatabaseName string    `json:"database_name"`
	Type         string    `json:"permission_type"`
	GrantedAt    time.Time `json:"granted_at"`
}

// TableName returns the name of the database table
// associated with the Permission model.
func (p Permission) TableName() string {
	return "backmeup_system.user_permissions"
}
