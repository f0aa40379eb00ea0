package models

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	Versioned
	ID            uuid.UUID           `json:"id"`
	PropertyID    uuid.UUID           `json:"property_id"`
	ResidentID    *uuid.UUID          `json:"resident_id,omitempty"`
	RoomID        *uuid.UUID          `json:"room_id,omitempty"`
	Category      string              `json:"category"`
	Description   string              `json:"description"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	ReportedDate  time.Time           `json:"reported_date"`
	ResolvedDate  *time.Time          `json:"resolved_date,omitempty"`
	EstimatedCost *float64            `json:"estimated_cost,omitempty"`
	ActualCost    *float64            `json:"actual_cost,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (m *MaintenanceRequest) GetID() string { return m.ID.String() }
