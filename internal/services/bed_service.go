package services

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type BedService struct {
	bedRepo  repositories.BedRepository
	roomRepo repositories.RoomRepository
	occRepo  repositories.OccupancyRepository
}

func NewBedService(bedRepo repositories.BedRepository, roomRepo repositories.RoomRepository, occRepo repositories.OccupancyRepository) *BedService {
	return &BedService{bedRepo: bedRepo, roomRepo: roomRepo, occRepo: occRepo}
}

func bedProperty(b *models.Bed) uuid.UUID { return b.PropertyID }

func (s *BedService) loadRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	rm, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, utils.Internal("Failed to load room", err)
	}
	if rm == nil {
		return nil, fieldError("Room not found", "room_id", "The selected room does not exist.")
	}
	return rm, nil
}

func (s *BedService) Create(ctx context.Context, scope Scope, req dtos.CreateBedRequest) (*models.Bed, error) {
	if err := requireAccess(scope, req.PropertyID); err != nil {
		return nil, err
	}
	rm, err := s.loadRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if rm.FloorID != req.FloorID || rm.PropertyID != req.PropertyID {
		return nil, fieldError("Room does not belong to the given floor", "room_id",
			"The selected room does not belong to the selected floor and property.")
	}

	b := &models.Bed{
		ID:         uuid.New(),
		RoomID:     rm.ID,
		FloorID:    rm.FloorID,
		PropertyID: rm.PropertyID,
		BedNumber:  req.BedNumber,
		BedName:    req.BedName,
		IsActive:   boolOr(req.IsActive, true),
	}
	b.RowVersion = 1
	if err := s.bedRepo.Create(ctx, b); err != nil {
		return nil, repoError(err, "Bed", "create")
	}
	return b, nil
}

func (s *BedService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Bed, error) {
	return loadScoped(ctx, scope, id, "Bed", s.bedRepo.GetByID, bedProperty)
}

func (s *BedService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Bed], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.bedRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Bed", "list")
	}
	return newPage(items, total, q), nil
}

// ListAvailable pages active beds that no resident occupies.
func (s *BedService) ListAvailable(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Bed], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.bedRepo.ListAvailable(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Bed", "list")
	}
	return newPage(items, total, q), nil
}

func (s *BedService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateBedRequest) (*models.Bed, error) {
	current, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	var target *models.Room
	if req.RoomID != nil && *req.RoomID != current.RoomID {
		if target, err = s.loadRoom(ctx, *req.RoomID); err != nil {
			return nil, err
		}
		if target.PropertyID != current.PropertyID {
			return nil, fieldError("Room does not belong to this property", "room_id",
				"The selected room does not belong to the bed's property.")
		}
		occ, err := s.occRepo.GetByBedID(ctx, id)
		if err != nil {
			return nil, utils.Internal("Failed to load occupancy", err)
		}
		if occ != nil && occ.IsOccupied {
			return nil, fieldError("Occupied beds cannot change rooms", "room_id",
				"Release the bed before moving it to another room.")
		}
	}

	updated, err := s.bedRepo.UpdateWithRetry(ctx, id, func(b *models.Bed) error {
		if target != nil {
			b.RoomID = target.ID
			b.FloorID = target.FloorID
		}
		if req.BedNumber != nil {
			b.BedNumber = *req.BedNumber
		}
		if req.BedName != nil {
			b.BedName = req.BedName
		}
		if req.IsActive != nil {
			b.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Bed", "update")
	}
	return updated, nil
}

func (s *BedService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.bedRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Bed", "delete")
	}
	return nil
}
