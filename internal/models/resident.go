package models

import (
	"time"

	"github.com/google/uuid"
)

type Resident struct {
	Versioned
	ID                  uuid.UUID  `json:"id"`
	PropertyID          uuid.UUID  `json:"property_id"`
	Name                string     `json:"name"`
	Gender              *string    `json:"gender,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Mobile              *string    `json:"mobile,omitempty"`
	DOB                 *Date      `json:"dob,omitempty"`
	Address             *string    `json:"address,omitempty"`
	Rent                float64    `json:"rent"`
	RentType            RentType   `json:"rent_type"`
	JoiningDate         Date       `json:"joining_date"`
	MoveOutDate         *Date      `json:"move_out_date,omitempty"`
	NextPayDate         *Date      `json:"next_pay_date,omitempty"`
	PaymentCycleStart   *Date      `json:"payment_cycle_start,omitempty"`
	PreferredBillingDay *int       `json:"preferred_billing_day,omitempty"`
	PhotoURL            *string    `json:"photo_url,omitempty"`
	AadharURL           *string    `json:"aadhar_url,omitempty"`
	CurrentFloorID      *uuid.UUID `json:"current_floor_id,omitempty"`
	CurrentRoomID       *uuid.UUID `json:"current_room_id,omitempty"`
	CurrentBedID        *uuid.UUID `json:"current_bed_id,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	OverrideComment     *string    `json:"override_comment,omitempty"`
	IsActive            bool       `json:"is_active"`
	Arrears             float64    `json:"arrears"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (r *Resident) GetID() string { return r.ID.String() }

// BillingDay is the preferred day of month, or the joining day when unset.
func (r *Resident) BillingDay() int {
	if r.PreferredBillingDay != nil && *r.PreferredBillingDay >= 1 && *r.PreferredBillingDay <= 31 {
		return *r.PreferredBillingDay
	}
	return r.JoiningDate.Day()
}

// ResidentLedger pairs a resident with the payments received to date.
type ResidentLedger struct {
	Resident  *Resident
	TotalPaid float64
}
