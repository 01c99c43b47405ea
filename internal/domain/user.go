package domain

import "time"

// User is the domain model for a registered account.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch carries optional field updates for a user record. Nil fields
// are left untouched.
type UserPatch struct {
	Name  *string
	Email *string
}
