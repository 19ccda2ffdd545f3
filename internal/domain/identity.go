package domain

import "strings"

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleEmployee   Role = "EMPLOYEE"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Identity is the caller as asserted by the upstream gateway via trust
// headers. The gateway has already authenticated the user; this service
// only interprets the forwarded subject and roles.
type Identity struct {
	Subject string
	Roles   []Role
}

// ParseRoles parses the comma-separated roles header. Role names are
// case-insensitive. SUPER_ADMIN implies ADMIN.
func ParseRoles(header string) []Role {
	if header == "" {
		return nil
	}

	var roles []Role
	for _, part := range strings.Split(header, ",") {
		name := Role(strings.ToUpper(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		roles = append(roles, name)
		if name == RoleSuperAdmin {
			roles = append(roles, RoleAdmin)
		}
	}
	return roles
}

func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsPrivileged reports whether the caller may bypass ownership checks.
func (i Identity) IsPrivileged() bool {
	return i.HasRole(RoleAdmin) || i.HasRole(RoleEmployee) || i.HasRole(RoleSuperAdmin)
}

// Scope resolves the query scope for this caller: privileged roles operate
// on any resource, everyone else only on rows they own.
func (i Identity) Scope() Scope {
	if i.IsPrivileged() {
		return Unrestricted()
	}
	return OwnedBy(i.Subject)
}
