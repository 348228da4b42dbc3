package user

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageBookings reports whether the role may change booking statuses for
// other users (confirm, complete).
func (r Role) CanManageBookings() bool {
	return r == RoleOperator || r == RoleAdmin
}

// CanManageCatalog reports whether the role may create or edit car washes and
// services.
func (r Role) CanManageCatalog() bool {
	return r == RoleOperator || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
