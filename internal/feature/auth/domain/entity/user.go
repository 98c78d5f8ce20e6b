// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// Users are created once at registration and never mutated or deleted
// through the API.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's optional display name.
	Name string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
