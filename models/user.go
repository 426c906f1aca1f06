package models

import (
	"strings"
	"time"
)

// Role values stored in the users.role column. RoleAdmin (and the legacy
// superadmin value) bypass per-database permission checks.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents an account record in the backmeup_system.users table.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user. It is assigned by
	// the database, is immutable, and is never reused.
	ID int64 `json:"-"`

	// Username is the unique login identifier, at most 50 characters.
	Username string `json:"username"`

	// Email is the unique contact address, at most 100 characters.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password, never the
	// plaintext value.
	Password string `json:"-"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`

	// CreatedAt is set by the database at insert time and is immutable
	// thereafter.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the last successful authentication,
	// nil for accounts that have never logged in.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// IsActive gates login eligibility. Deactivation is the soft-delete
	// mechanism; rows are only hard-deleted through the users page flow.
	IsActive bool `json:"is_active"`

	// Role is the account role, defaulting to "user".
	Role string `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "backmeup_system.users"
}

// IsAdmin reports whether the user's role grants the administrative
// permission bypass. Role values are compared case-insensitively, so a
// hand-edited "Admin" row keeps its bypass.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin) || strings.EqualFold(u.Role, RoleSuperAdmin)
}
