package models

import (
	"time"

	"github.com/google/uuid"
)

type Bed struct {
	Versioned
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	FloorID    uuid.UUID `json:"floor_id"`
	PropertyID uuid.UUID `json:"property_id"`
	BedNumber  string    `json:"bed_number"`
	BedName    *string   `json:"bed_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Bed) GetID() string { return b.ID.String() }
