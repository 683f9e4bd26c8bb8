// Package entity contains the core business objects of the project.
package entity

// Role represents the access level a user has in the system.
type Role string

const (
	// RoleAdmin may manage users, posts and events.
	RoleAdmin Role = "admin"
	// RoleReader may authenticate and register for events.
	RoleReader Role = "reader"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReader:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
