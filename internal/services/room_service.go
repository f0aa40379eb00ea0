package services

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type RoomService struct {
	roomRepo  repositories.RoomRepository
	floorRepo repositories.FloorRepository
}

func NewRoomService(roomRepo repositories.RoomRepository, floorRepo repositories.FloorRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo, floorRepo: floorRepo}
}

func roomProperty(r *models.Room) uuid.UUID { return r.PropertyID }

// floorInProperty checks that floorID exists under propertyID.
func (s *RoomService) floorInProperty(ctx context.Context, floorID, propertyID uuid.UUID) error {
	f, err := s.floorRepo.GetByID(ctx, floorID)
	if err != nil {
		return utils.Internal("Failed to load floor", err)
	}
	if f == nil || f.PropertyID != propertyID {
		return fieldError("Floor does not belong to this property", "floor_id",
			"The selected floor does not belong to the selected property.")
	}
	return nil
}

func (s *RoomService) Create(ctx context.Context, scope Scope, req dtos.CreateRoomRequest) (*models.Room, error) {
	if err := requireAccess(scope, req.PropertyID); err != nil {
		return nil, err
	}
	if err := s.floorInProperty(ctx, req.FloorID, req.PropertyID); err != nil {
		return nil, err
	}

	total := intOr(req.TotalBeds, 1)
	roomType := models.RoomTypeForBeds(total)
	if req.RoomType != nil {
		roomType = *req.RoomType
	}
	rm := &models.Room{
		ID:          uuid.New(),
		FloorID:     req.FloorID,
		PropertyID:  req.PropertyID,
		RoomNumber:  req.RoomNumber,
		RoomName:    req.RoomName,
		TotalBeds:   total,
		RoomType:    roomType,
		Capacity:    intOr(req.Capacity, total),
		Description: req.Description,
		IsActive:    boolOr(req.IsActive, true),
	}
	rm.RowVersion = 1
	if err := s.roomRepo.Create(ctx, rm); err != nil {
		return nil, repoError(err, "Room", "create")
	}
	return rm, nil
}

func (s *RoomService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Room, error) {
	return loadScoped(ctx, scope, id, "Room", s.roomRepo.GetByID, roomProperty)
}

func (s *RoomService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Room], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.roomRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Room", "list")
	}
	return newPage(items, total, q), nil
}

func (s *RoomService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateRoomRequest) (*models.Room, error) {
	current, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.FloorID != nil && *req.FloorID != current.FloorID {
		if err := s.floorInProperty(ctx, *req.FloorID, current.PropertyID); err != nil {
			return nil, err
		}
	}

	updated, err := s.roomRepo.UpdateWithRetry(ctx, id, func(rm *models.Room) error {
		if req.FloorID != nil {
			rm.FloorID = *req.FloorID
		}
		if req.RoomNumber != nil {
			rm.RoomNumber = *req.RoomNumber
		}
		if req.RoomName != nil {
			rm.RoomName = req.RoomName
		}
		if req.TotalBeds != nil {
			rm.TotalBeds = *req.TotalBeds
		}
		if req.RoomType != nil {
			rm.RoomType = *req.RoomType
		}
		if req.Capacity != nil {
			rm.Capacity = *req.Capacity
		}
		if req.Description != nil {
			rm.Description = req.Description
		}
		if req.IsActive != nil {
			rm.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Room", "update")
	}
	return updated, nil
}

func (s *RoomService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Room", "delete")
	}
	return nil
}
