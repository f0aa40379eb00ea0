package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreateResidentRequest struct {
	PropertyID          uuid.UUID        `json:"property_id" validate:"required"`
	Name                string           `json:"name" validate:"required,max=255"`
	Gender              *string          `json:"gender,omitempty" validate:"omitempty,max=20"`
	Email               *string          `json:"email,omitempty" validate:"omitempty,email"`
	Mobile              *string          `json:"mobile,omitempty" validate:"omitempty,max=20"`
	DOB                 *models.Date     `json:"dob,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Rent                float64          `json:"rent" validate:"gte=0"`
	RentType            *models.RentType `json:"rent_type,omitempty" validate:"omitempty,oneof=monthly daily weekly bi-weekly"`
	JoiningDate         *models.Date     `json:"joining_date" validate:"required"`
	MoveOutDate         *models.Date     `json:"move_out_date,omitempty"`
	NextPayDate         *models.Date     `json:"next_pay_date,omitempty"`
	PaymentCycleStart   *models.Date     `json:"payment_cycle_start,omitempty"`
	PreferredBillingDay *int             `json:"preferred_billing_day,omitempty" validate:"omitempty,min=1,max=31"`
	PhotoURL            *string          `json:"photo_url,omitempty" validate:"omitempty,url"`
	AadharURL           *string          `json:"aadhar_url,omitempty" validate:"omitempty,url"`
	Notes               *string          `json:"notes,omitempty"`
	OverrideComment     *string          `json:"override_comment,omitempty"`
	IsActive            *bool            `json:"is_active,omitempty"`
	Arrears             *float64         `json:"arrears,omitempty" validate:"omitempty,gte=0"`
}

type UpdateResidentRequest struct {
	Name                *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Gender              *string          `json:"gender,omitempty" validate:"omitempty,max=20"`
	Email               *string          `json:"email,omitempty" validate:"omitempty,email"`
	Mobile              *string          `json:"mobile,omitempty" validate:"omitempty,max=20"`
	DOB                 *models.Date     `json:"dob,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Rent                *float64         `json:"rent,omitempty" validate:"omitempty,gte=0"`
	RentType            *models.RentType `json:"rent_type,omitempty" validate:"omitempty,oneof=monthly daily weekly bi-weekly"`
	JoiningDate         *models.Date     `json:"joining_date,omitempty"`
	MoveOutDate         *models.Date     `json:"move_out_date,omitempty"`
	NextPayDate         *models.Date     `json:"next_pay_date,omitempty"`
	PaymentCycleStart   *models.Date     `json:"payment_cycle_start,omitempty"`
	PreferredBillingDay *int             `json:"preferred_billing_day,omitempty" validate:"omitempty,min=1,max=31"`
	PhotoURL            *string          `json:"photo_url,omitempty" validate:"omitempty,url"`
	AadharURL           *string          `json:"aadhar_url,omitempty" validate:"omitempty,url"`
	Notes               *string          `json:"notes,omitempty"`
	OverrideComment     *string          `json:"override_comment,omitempty"`
	IsActive            *bool            `json:"is_active,omitempty"`
	Arrears             *float64         `json:"arrears,omitempty" validate:"omitempty,gte=0"`
}

type DueSoonItem struct {
	Resident        *models.Resident `json:"resident"`
	BillingDay      int              `json:"billing_day"`
	NextBillingDate models.Date      `json:"next_billing_date"`
	DaysUntilDue    int              `json:"days_until_due"`
	AmountDue       float64          `json:"amount_due"`
}

type OverdueItem struct {
	Resident      *models.Resident `json:"resident"`
	BillingDay    int              `json:"billing_day"`
	MonthsElapsed int              `json:"months_elapsed"`
	ExpectedRent  float64          `json:"expected_rent"`
	TotalPaid     float64          `json:"total_paid"`
	Arrears       float64          `json:"arrears"`
	OverdueAmount float64          `json:"overdue_amount"`
}
