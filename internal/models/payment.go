package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Versioned
	ID              uuid.UUID     `json:"id"`
	PropertyID      uuid.UUID     `json:"property_id"`
	ResidentID      uuid.UUID     `json:"resident_id"`
	ResidentName    string        `json:"resident_name"`
	Amount          float64       `json:"amount"`
	PaymentDate     Date          `json:"payment_date"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	ReferenceNumber *string       `json:"reference_number,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p *Payment) GetID() string { return p.ID.String() }
