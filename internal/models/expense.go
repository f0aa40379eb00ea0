package models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	Versioned
	ID            uuid.UUID     `json:"id"`
	PropertyID    uuid.UUID     `json:"property_id"`
	Amount        float64       `json:"amount"`
	Category      string        `json:"category"`
	Description   *string       `json:"description,omitempty"`
	ExpenseDate   Date          `json:"expense_date"`
	PaidBy        *string       `json:"paid_by,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ReceiptURL    *string       `json:"receipt_url,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (e *Expense) GetID() string { return e.ID.String() }
