package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type AssignOccupancyRequest struct {
	ResidentID    uuid.UUID    `json:"resident_id" validate:"required"`
	BedID         uuid.UUID    `json:"bed_id" validate:"required"`
	RoomID        *uuid.UUID   `json:"room_id,omitempty"`
	OccupiedSince *models.Date `json:"occupied_since,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

type ReleaseOccupancyRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// CreateOccupancyRequest registers a bed's occupancy row. With is_occupied
// set it behaves like an assignment.
type CreateOccupancyRequest struct {
	BedID         uuid.UUID    `json:"bed_id" validate:"required"`
	RoomID        *uuid.UUID   `json:"room_id,omitempty"`
	ResidentID    *uuid.UUID   `json:"resident_id,omitempty" validate:"required_if=IsOccupied true"`
	IsOccupied    bool         `json:"is_occupied"`
	OccupiedSince *models.Date `json:"occupied_since,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

// UpdateOccupancyRequest changes the since-date, or moves the row between
// occupied and free when is_occupied is given.
type UpdateOccupancyRequest struct {
	IsOccupied    *bool        `json:"is_occupied,omitempty"`
	ResidentID    *uuid.UUID   `json:"resident_id,omitempty"`
	OccupiedSince *models.Date `json:"occupied_since,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}
