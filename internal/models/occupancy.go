package models

import (
	"time"

	"github.com/google/uuid"
)

// Occupancy is the single assignment row of a bed.
type Occupancy struct {
	Versioned
	ID            uuid.UUID  `json:"id"`
	PropertyID    uuid.UUID  `json:"property_id"`
	FloorID       uuid.UUID  `json:"floor_id"`
	RoomID        uuid.UUID  `json:"room_id"`
	BedID         uuid.UUID  `json:"bed_id"`
	ResidentID    *uuid.UUID `json:"resident_id,omitempty"`
	ResidentName  *string    `json:"resident_name,omitempty"`
	IsOccupied    bool       `json:"is_occupied"`
	OccupiedSince *Date      `json:"occupied_since,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (o *Occupancy) GetID() string { return o.ID.String() }

// OccupancyHistory rows are written once and never updated.
type OccupancyHistory struct {
	ID           uuid.UUID       `json:"id"`
	PropertyID   uuid.UUID       `json:"property_id"`
	FloorID      uuid.UUID       `json:"floor_id"`
	RoomID       uuid.UUID       `json:"room_id"`
	BedID        uuid.UUID       `json:"bed_id"`
	ResidentID   uuid.UUID       `json:"resident_id"`
	ResidentName *string         `json:"resident_name,omitempty"`
	Action       OccupancyAction `json:"action"`
	ActionDate   time.Time       `json:"action_date"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
