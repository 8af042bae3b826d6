package auth

// UserRole is the user's role
type UserRole = string

const (
	// RoleUser is a regular account (view and edit own work)
	RoleUser UserRole = "user"
	// RoleAdmin is an administrative account
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAtLeast checks if the role meets the minimum required level
func IsAtLeast(r, minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleUser:  0,
		RoleAdmin: 1,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// Authorities returns the granted authorities derived from a role.
// Admins carry every authority below them in the hierarchy.
func Authorities(r UserRole) []string {
	switch r {
	case RoleAdmin:
		return []string{"ROLE_ADMIN", "ROLE_USER"}
	case RoleUser:
		return []string{"ROLE_USER"}
	default:
		return nil
	}
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleUser,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}
