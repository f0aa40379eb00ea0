package models

import (
	"time"

	"github.com/google/uuid"
)

// Floor is one level of a property.
type Floor struct {
	Versioned
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	FloorLevel  int       `json:"floor_level"`
	FloorName   string    `json:"floor_name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *Floor) GetID() string { return f.ID.String() }
