package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreateExpenseRequest struct {
	PropertyID    uuid.UUID             `json:"property_id" validate:"required"`
	Amount        float64               `json:"amount" validate:"gt=0"`
	Category      string                `json:"category" validate:"required,max=100"`
	Description   *string               `json:"description,omitempty"`
	ExpenseDate   *models.Date          `json:"expense_date" validate:"required"`
	PaidBy        *string               `json:"paid_by,omitempty" validate:"omitempty,max=255"`
	PaymentMethod *models.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=cash bank_transfer upi card"`
	ReceiptURL    *string               `json:"receipt_url,omitempty" validate:"omitempty,url"`
	Notes         *string               `json:"notes,omitempty"`
}

type UpdateExpenseRequest struct {
	Amount        *float64              `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category      *string               `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string               `json:"description,omitempty"`
	ExpenseDate   *models.Date          `json:"expense_date,omitempty"`
	PaidBy        *string               `json:"paid_by,omitempty" validate:"omitempty,max=255"`
	PaymentMethod *models.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=cash bank_transfer upi card"`
	ReceiptURL    *string               `json:"receipt_url,omitempty" validate:"omitempty,url"`
	Notes         *string               `json:"notes,omitempty"`
}

type ExpenseSummary struct {
	TotalExpenses     float64 `json:"total_expenses"`
	ThisMonthExpenses float64 `json:"this_month_expenses"`
}

type CreatePaymentRequest struct {
	ResidentID      uuid.UUID             `json:"resident_id" validate:"required"`
	PropertyID      *uuid.UUID            `json:"property_id,omitempty"`
	ResidentName    *string               `json:"resident_name,omitempty" validate:"omitempty,max=255"`
	Amount          float64               `json:"amount" validate:"gt=0"`
	PaymentDate     *models.Date          `json:"payment_date" validate:"required"`
	PaymentMethod   *models.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=cash bank_transfer upi card"`
	ReferenceNumber *string               `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Notes           *string               `json:"notes,omitempty"`
}

type UpdatePaymentRequest struct {
	ResidentName    *string               `json:"resident_name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount          *float64              `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentDate     *models.Date          `json:"payment_date,omitempty"`
	PaymentMethod   *models.PaymentMethod `json:"payment_method,omitempty" validate:"omitempty,oneof=cash bank_transfer upi card"`
	ReferenceNumber *string               `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Notes           *string               `json:"notes,omitempty"`
}

type PaymentSummary struct {
	TotalPayments     float64 `json:"total_payments"`
	ThisMonthPayments float64 `json:"this_month_payments"`
}

type ResidentPaymentTotal struct {
	ResidentID uuid.UUID `json:"resident_id"`
	Total      float64   `json:"total"`
	Count      int       `json:"count"`
}
