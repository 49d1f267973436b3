// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and place orders.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`     // Login identifier, stored lower-cased.
	Name         string    `json:"name"`      // Display name.
	PasswordHash string    `json:"-"`         // bcrypt hash of the password, never serialized.
	Roles        Roles     `json:"roles"`     // Granted roles; every account has at least RoleCustomer.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
