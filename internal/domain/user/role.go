package user

// Role is the authorization role of a profile. Clients only see their
// associated companies; technicians and administrators see every tenant.
type Role string

const (
	RoleClient     Role = "cliente"
	RoleTechnician Role = "tecnico"
	RoleAdmin      Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role grants cross-tenant visibility.
func (r Role) IsStaff() bool {
	return r == RoleTechnician || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanViewInternalComments reports whether ticket comments flagged internal
// are visible to this role.
func (r Role) CanViewInternalComments() bool {
	return r.IsStaff()
}
