package services

import (
	"context"
	"strings"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

// UserService manages login identities. Routes restrict it to admins.
type UserService struct {
	userRepo repositories.UserRepository
	propRepo repositories.PropertyRepository
}

func NewUserService(userRepo repositories.UserRepository, propRepo repositories.PropertyRepository) *UserService {
	return &UserService{userRepo: userRepo, propRepo: propRepo}
}

func (s *UserService) checkProperty(ctx context.Context, propertyID *uuid.UUID) error {
	if propertyID == nil {
		return nil
	}
	p, err := s.propRepo.GetByID(ctx, *propertyID)
	if err != nil {
		return utils.Internal("Failed to load property", err)
	}
	if p == nil {
		return fieldError("Property not found", "property_id", "The selected property does not exist.")
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error) {
	if err := s.checkProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.Internal("Failed to hash password", err)
	}
	role := models.RoleStaff
	if req.Role != nil {
		role = *req.Role
	}
	u := &models.User{
		ID:           uuid.New(),
		PropertyID:   req.PropertyID,
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		IsActive:     boolOr(req.IsActive, true),
	}
	u.RowVersion = 1
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, repoError(err, "User", "create")
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal("Failed to load user", err)
	}
	if u == nil {
		return nil, utils.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, q ListQuery) (*dtos.Page[*models.User], error) {
	items, total, err := s.userRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "User", "list")
	}
	return newPage(items, total, q), nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateUserRequest) (*models.User, error) {
	if err := s.checkProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}
	var hash string
	if req.Password != nil {
		h, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, utils.Internal("Failed to hash password", err)
		}
		hash = h
	}

	updated, err := s.userRepo.UpdateWithRetry(ctx, id, func(u *models.User) error {
		if req.Username != nil {
			u.Username = strings.TrimSpace(*req.Username)
		}
		if req.Email != nil {
			u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if hash != "" {
			u.PasswordHash = hash
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.PropertyID != nil {
			u.PropertyID = req.PropertyID
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "User", "update")
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return repoError(err, "User", "delete")
	}
	return nil
}
