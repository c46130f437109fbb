// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the storefront, representing a single account.
// The password hash lives on the entity so the usecase layer can verify
// credentials, but it is excluded from every serialized representation.
type User struct {
	ID           uuid.UUID `json:"id"`            // The unique identifier for the account.
	Email        string    `json:"email"`         // Login identifier, unique across all accounts.
	Name         string    `json:"name"`          // Display name.
	Role         Role      `json:"role"`          // Either customer or admin.
	Phone        string    `json:"phone,omitempty"`   // Optional contact phone.
	Address      string    `json:"address,omitempty"` // Optional default delivery address.
	PasswordHash string    `json:"-"`             // bcrypt hash, never exposed on any read path.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
