package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access role carried in the user's token.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSales      Role = "sales"
	RoleOperations Role = "operations"
	RoleAgent      Role = "agent"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleOperations, RoleAgent:
		return true
	}
	return false
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                // Primary key
	Name         string    `json:"name" db:"name"`            // Display name
	Email        string    `json:"email" db:"email"`          // Unique login email
	Company      string    `json:"company" db:"company"`      // Agency name
	Role         Role      `json:"role" db:"role"`            // Access role
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
