package entity

import "slices"

// Role grants access to a group of routes.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleAdmin may manage the catalog and move orders through fulfilment.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Roles is the set of roles held by one account, kept in grant order.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings returns the roles in the form carried by access token claims.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, role := range rs {
		out = append(out, string(role))
	}

	return out
}

// ParseRoles keeps the first occurrence of every known role in raw and drops the rest.
func ParseRoles(raw []string) Roles {
	roles := make(Roles, 0, len(raw))
	for _, s := range raw {
		role := Role(s)
		if role.IsValid() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
