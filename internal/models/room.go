package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Versioned
	ID          uuid.UUID `json:"id"`
	FloorID     uuid.UUID `json:"floor_id"`
	PropertyID  uuid.UUID `json:"property_id"`
	RoomNumber  string    `json:"room_number"`
	RoomName    *string   `json:"room_name,omitempty"`
	TotalBeds   int       `json:"total_beds"`
	RoomType    RoomType  `json:"room_type"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Room) GetID() string { return r.ID.String() }
