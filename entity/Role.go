package entity

import "strings"

// Role is the closed set of user roles known to the system.
type Role string

const (
	RoleCustomer   Role = "Customer"
	RoleStaff      Role = "Staff"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// ParseRole maps an incoming role name (case-insensitive) onto the
// enumeration. Unrecognized names are reported, never coerced.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, true
	case "staff":
		return RoleStaff, true
	case "admin":
		return RoleAdmin, true
	case "superadmin":
		return RoleSuperAdmin, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }
