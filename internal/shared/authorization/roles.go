package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
)

var validRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleStaff:   true,
	RoleManager: true,
	RoleUser:    true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role bypasses per-report ownership checks.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// AllRoles returns roles in privilege order, highest first.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleStaff, RoleManager, RoleUser}
}
