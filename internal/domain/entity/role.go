// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular storefront customer.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates an administrator with catalog and order management access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string into a Role, falling back to customer
// for unknown values so documents read from the store never carry an
// unconstrained role.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleCustomer
	}

	return role
}
