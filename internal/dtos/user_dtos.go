package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username   string           `json:"username" validate:"required,min=3,max=150"`
	Email      string           `json:"email" validate:"required,email"`
	Password   string           `json:"password" validate:"required,min=8,max=72"`
	Role       *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff"`
	PropertyID *uuid.UUID       `json:"property_id,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

type UpdateUserRequest struct {
	Username   *string          `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string          `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role       *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager staff"`
	PropertyID *uuid.UUID       `json:"property_id,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}
