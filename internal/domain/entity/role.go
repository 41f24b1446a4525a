// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin can manage users and export the full data set.
	RoleAdmin Role = "admin"
	// RoleDataEntry is the default role for self-registered staff.
	RoleDataEntry Role = "data_entry"
	// RoleAccounts is the finance role.
	RoleAccounts Role = "accounts"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDataEntry, RoleAccounts:
		return true
	default:
		return false
	}
}

// Can reports whether the role is granted the permission.
func (r Role) Can(p Permission) bool {
	granted, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = granted[p]

	return ok
}
