package models

// Role is the closed, case-sensitive role enumeration. The string values
// are wire-visible: they appear in user records, JWT claims and responses.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleTeacher  Role = "Teacher"
	RoleExaminee Role = "Examinee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleExaminee:
		return true
	default:
		return false
	}
}

// ParseRole safely parses a string into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// AllRoles returns the predefined roles.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleTeacher, RoleExaminee}
}
