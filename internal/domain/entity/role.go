// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level of an authenticated account.
// The set is closed; anything outside it is rejected at the boundary
// where a role is parsed or assigned.
type Role string

const (
	// RoleAdminMaster is the highest-privilege role. It is the only role
	// permitted to create, delete, approve and re-role accounts.
	RoleAdminMaster Role = "AdminMaster"
	// RoleViewer is the read-only role and the default for accounts
	// self-registered through Google sign-in.
	RoleViewer Role = "Viewer"
	// RoleCreatorAdmin may create registry records.
	RoleCreatorAdmin Role = "CreatorAdmin"
	// RoleEditorAdmin may modify registry records and non-AdminMaster accounts.
	RoleEditorAdmin Role = "EditorAdmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdminMaster, RoleViewer, RoleCreatorAdmin, RoleEditorAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// ParseRole converts a raw string to a Role, reporting whether it is a
// member of the closed role set.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
