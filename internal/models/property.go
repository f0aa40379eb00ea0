package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	Versioned
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	TimeZone      string    `json:"time_zone"`
	FloorsCount   int       `json:"floors_count"`
	RoomsPerFloor int       `json:"rooms_per_floor"`
	BedsPerRoom   int       `json:"beds_per_room"`
	Description   *string   `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Property) GetID() string { return p.ID.String() }

// TotalBeds is the configured capacity of the property.
func (p *Property) TotalBeds() int {
	return p.FloorsCount * p.RoomsPerFloor * p.BedsPerRoom
}

// Location resolves the property's time zone, falling back to fallback.
func (p *Property) Location(fallback *time.Location) *time.Location {
	if p.TimeZone != "" {
		if loc, err := time.LoadLocation(p.TimeZone); err == nil {
			return loc
		}
	}
	if fallback == nil {
		return time.UTC
	}
	return fallback
}
