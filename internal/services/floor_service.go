package services

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/google/uuid"
)

type FloorService struct {
	floorRepo repositories.FloorRepository
	propRepo  repositories.PropertyRepository
}

func NewFloorService(floorRepo repositories.FloorRepository, propRepo repositories.PropertyRepository) *FloorService {
	return &FloorService{floorRepo: floorRepo, propRepo: propRepo}
}

func floorProperty(f *models.Floor) uuid.UUID { return f.PropertyID }

func (s *FloorService) Create(ctx context.Context, scope Scope, req dtos.CreateFloorRequest) (*models.Floor, error) {
	if _, err := loadProperty(ctx, s.propRepo, scope, req.PropertyID); err != nil {
		return nil, err
	}
	f := &models.Floor{
		ID:          uuid.New(),
		PropertyID:  req.PropertyID,
		FloorLevel:  req.FloorLevel,
		FloorName:   req.FloorName,
		Description: req.Description,
		IsActive:    boolOr(req.IsActive, true),
	}
	f.RowVersion = 1
	if err := s.floorRepo.Create(ctx, f); err != nil {
		return nil, repoError(err, "Floor", "create")
	}
	return f, nil
}

func (s *FloorService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Floor, error) {
	return loadScoped(ctx, scope, id, "Floor", s.floorRepo.GetByID, floorProperty)
}

func (s *FloorService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Floor], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.floorRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Floor", "list")
	}
	return newPage(items, total, q), nil
}

func (s *FloorService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateFloorRequest) (*models.Floor, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.floorRepo.UpdateWithRetry(ctx, id, func(f *models.Floor) error {
		if req.FloorLevel != nil {
			f.FloorLevel = *req.FloorLevel
		}
		if req.FloorName != nil {
			f.FloorName = *req.FloorName
		}
		if req.Description != nil {
			f.Description = req.Description
		}
		if req.IsActive != nil {
			f.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Floor", "update")
	}
	return updated, nil
}

func (s *FloorService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.floorRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Floor", "delete")
	}
	return nil
}
