package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Versioned
	ID           uuid.UUID  `json:"id"`
	PropertyID   *uuid.UUID `json:"property_id,omitempty"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) GetID() string { return u.ID.String() }
