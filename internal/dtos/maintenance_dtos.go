package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreateMaintenanceRequest struct {
	PropertyID    uuid.UUID                   `json:"property_id" validate:"required"`
	ResidentID    *uuid.UUID                  `json:"resident_id,omitempty"`
	RoomID        *uuid.UUID                  `json:"room_id,omitempty"`
	Category      string                      `json:"category" validate:"required,max=100"`
	Description   string                      `json:"description" validate:"required"`
	Priority      *models.MaintenancePriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status        *models.MaintenanceStatus   `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	EstimatedCost *float64                    `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
	ActualCost    *float64                    `json:"actual_cost,omitempty" validate:"omitempty,gte=0"`
	Notes         *string                     `json:"notes,omitempty"`
}

type UpdateMaintenanceRequest struct {
	ResidentID    *uuid.UUID                  `json:"resident_id,omitempty"`
	RoomID        *uuid.UUID                  `json:"room_id,omitempty"`
	Category      *string                     `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string                     `json:"description,omitempty" validate:"omitempty,min=1"`
	Priority      *models.MaintenancePriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status        *models.MaintenanceStatus   `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	EstimatedCost *float64                    `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
	ActualCost    *float64                    `json:"actual_cost,omitempty" validate:"omitempty,gte=0"`
	Notes         *string                     `json:"notes,omitempty"`
}

type ResolveMaintenanceRequest struct {
	ActualCost *float64 `json:"actual_cost,omitempty" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes,omitempty"`
}
