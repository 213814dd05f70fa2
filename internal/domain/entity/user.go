// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a human actor. The email doubles as the identity value copied
// into every collection the user has touched (deviceOwner, createdBy,
// updatedBy, grants, live connections); renaming it triggers the
// propagation cascade.
type User struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the user.
	Email      string    `json:"email"`       // The identity value for this user across all collections.
	Name       string    `json:"name"`        // The user's display name.
	IsDisabled bool      `json:"is_disabled"` // Disabled users keep their data but cannot mutate anything.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this account was created.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// Authentication represents a single login credential for a user.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this specific authentication record itself.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Provider     string    // The authentication provider, e.g., "email".
	Identifier   string    // Denormalized copy of the user's email, rewritten on rename.
	PasswordHash string    // Stores the bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// PushToken is a Firebase Cloud Messaging registration owned by a user,
// used as a delivery fallback when the user holds no live connection.
type PushToken struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"` // Denormalized owner email, rewritten on rename.
	Token     string    `json:"token"`
	Platform  string    `json:"platform"` // ios, android.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
