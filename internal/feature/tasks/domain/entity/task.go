// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task represents a single todo item owned by a user.
// Ownership is fixed at creation; every query and mutation is scoped
// by (ID, UserID) so a task is never visible outside its owner.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the identifier of the owning user.
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Title is the short description of the task. Required, non-empty.
	Title string `gorm:"size:255;not null" json:"title"`

	// Description is an optional longer description.
	Description string `gorm:"type:text" json:"description"`

	// Completed reports whether the task has been marked done.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
