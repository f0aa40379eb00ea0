package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreateFloorRequest struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	FloorLevel  int       `json:"floor_level" validate:"gte=0"`
	FloorName   string    `json:"floor_name" validate:"required,max=100"`
	Description *string   `json:"description,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type UpdateFloorRequest struct {
	FloorLevel  *int    `json:"floor_level,omitempty" validate:"omitempty,gte=0"`
	FloorName   *string `json:"floor_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type CreateRoomRequest struct {
	PropertyID  uuid.UUID        `json:"property_id" validate:"required"`
	FloorID     uuid.UUID        `json:"floor_id" validate:"required"`
	RoomNumber  string           `json:"room_number" validate:"required,max=20"`
	RoomName    *string          `json:"room_name,omitempty" validate:"omitempty,max=100"`
	TotalBeds   *int             `json:"total_beds,omitempty" validate:"omitempty,gte=1"`
	RoomType    *models.RoomType `json:"room_type,omitempty" validate:"omitempty,oneof=single double triple dormitory"`
	Capacity    *int             `json:"capacity,omitempty" validate:"omitempty,gte=1"`
	Description *string          `json:"description,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

type UpdateRoomRequest struct {
	FloorID     *uuid.UUID       `json:"floor_id,omitempty"`
	RoomNumber  *string          `json:"room_number,omitempty" validate:"omitempty,min=1,max=20"`
	RoomName    *string          `json:"room_name,omitempty" validate:"omitempty,max=100"`
	TotalBeds   *int             `json:"total_beds,omitempty" validate:"omitempty,gte=1"`
	RoomType    *models.RoomType `json:"room_type,omitempty" validate:"omitempty,oneof=single double triple dormitory"`
	Capacity    *int             `json:"capacity,omitempty" validate:"omitempty,gte=1"`
	Description *string          `json:"description,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

type CreateBedRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	FloorID    uuid.UUID `json:"floor_id" validate:"required"`
	RoomID     uuid.UUID `json:"room_id" validate:"required"`
	BedNumber  string    `json:"bed_number" validate:"required,max=20"`
	BedName    *string   `json:"bed_name,omitempty" validate:"omitempty,max=100"`
	IsActive   *bool     `json:"is_active,omitempty"`
}

type UpdateBedRequest struct {
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	BedNumber *string    `json:"bed_number,omitempty" validate:"omitempty,min=1,max=20"`
	BedName   *string    `json:"bed_name,omitempty" validate:"omitempty,max=100"`
	IsActive  *bool      `json:"is_active,omitempty"`
}
