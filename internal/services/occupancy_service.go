package services

import (
	"context"
	"net/http"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type OccupancyService struct {
	occRepo      repositories.OccupancyRepository
	bedRepo      repositories.BedRepository
	residentRepo repositories.ResidentRepository
	propRepo     repositories.PropertyRepository
	defaultLoc   *time.Location
	now          func() time.Time
}

func NewOccupancyService(
	occRepo repositories.OccupancyRepository,
	bedRepo repositories.BedRepository,
	residentRepo repositories.ResidentRepository,
	propRepo repositories.PropertyRepository,
	defaultLoc *time.Location,
) *OccupancyService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &OccupancyService{
		occRepo:      occRepo,
		bedRepo:      bedRepo,
		residentRepo: residentRepo,
		propRepo:     propRepo,
		defaultLoc:   defaultLoc,
		now:          time.Now,
	}
}

func occupancyProperty(o *models.Occupancy) uuid.UUID { return o.PropertyID }

// placement resolves the bed a request targets and checks the stated room.
func (s *OccupancyService) placement(ctx context.Context, scope Scope, bedID uuid.UUID, roomID *uuid.UUID) (*models.Bed, error) {
	bed, err := s.bedRepo.GetByID(ctx, bedID)
	if err != nil {
		return nil, utils.Internal("Failed to load bed", err)
	}
	if bed == nil || !scope.CanAccess(bed.PropertyID) {
		return nil, fieldError("Bed not found", "bed_id", "The selected bed does not exist.")
	}
	if roomID != nil && *roomID != bed.RoomID {
		return nil, fieldError("Bed is not in the selected room", "bed_id",
			"The selected bed does not belong to the selected room.")
	}
	if !bed.IsActive {
		return nil, fieldError("Bed is inactive", "bed_id", "The selected bed is not active.")
	}
	return bed, nil
}

func (s *OccupancyService) today(ctx context.Context, propertyID uuid.UUID) models.Date {
	loc := s.defaultLoc
	if p, err := s.propRepo.GetByID(ctx, propertyID); err == nil && p != nil {
		loc = p.Location(s.defaultLoc)
	}
	return models.DateOf(s.now().In(loc))
}

// Assign places a resident on a free bed.
func (s *OccupancyService) Assign(ctx context.Context, scope Scope, req dtos.AssignOccupancyRequest) (*models.Occupancy, error) {
	bed, err := s.placement(ctx, scope, req.BedID, req.RoomID)
	if err != nil {
		return nil, err
	}
	return s.assignBed(ctx, bed, req.ResidentID, req.OccupiedSince, req.Notes)
}

func (s *OccupancyService) assignBed(
	ctx context.Context,
	bed *models.Bed,
	residentID uuid.UUID,
	since *models.Date,
	notes *string,
) (*models.Occupancy, error) {
	res, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, utils.Internal("Failed to load resident", err)
	}
	if res == nil {
		return nil, fieldError("Resident not found", "resident_id", "The selected resident does not exist.")
	}
	if res.PropertyID != bed.PropertyID {
		return nil, fieldError("Resident belongs to another property", "resident_id",
			"The resident does not belong to the bed's property.")
	}

	existing, err := s.occRepo.GetByBedID(ctx, bed.ID)
	if err != nil {
		return nil, utils.Internal("Failed to load occupancy", err)
	}
	if existing != nil && existing.IsOccupied {
		return nil, repoError(utils.ErrBedOccupied, "Occupancy", "assign")
	}

	day := s.today(ctx, bed.PropertyID)
	if since != nil {
		day = *since
	}
	o, err := s.occRepo.Assign(ctx, repositories.OccupancyAssignment{
		PropertyID:    bed.PropertyID,
		FloorID:       bed.FloorID,
		RoomID:        bed.RoomID,
		BedID:         bed.ID,
		ResidentID:    res.ID,
		OccupiedSince: day,
		Notes:         notes,
	})
	if err != nil {
		return nil, repoError(err, "Occupancy", "assign")
	}
	utils.Logger.Infof("Assigned resident %s to bed %s", res.ID, bed.ID)
	return o, nil
}

// Release frees an occupied bed.
func (s *OccupancyService) Release(ctx context.Context, scope Scope, id uuid.UUID, req dtos.ReleaseOccupancyRequest) (*models.Occupancy, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	o, err := s.occRepo.Release(ctx, id, req.Notes)
	if err != nil {
		return nil, repoError(err, "Occupancy", "release")
	}
	utils.Logger.Infof("Released bed %s", o.BedID)
	return o, nil
}

// Create registers the occupancy row of a bed. An occupied create goes
// through the same checks as Assign.
func (s *OccupancyService) Create(ctx context.Context, scope Scope, req dtos.CreateOccupancyRequest) (*models.Occupancy, error) {
	bed, err := s.placement(ctx, scope, req.BedID, req.RoomID)
	if err != nil {
		return nil, err
	}
	if req.IsOccupied {
		if req.ResidentID == nil {
			return nil, fieldError("Resident is required", "resident_id", "This field is required.")
		}
		return s.assignBed(ctx, bed, *req.ResidentID, req.OccupiedSince, req.Notes)
	}

	existing, err := s.occRepo.GetByBedID(ctx, bed.ID)
	if err != nil {
		return nil, utils.Internal("Failed to load occupancy", err)
	}
	if existing != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Occupancy already exists for this bed",
		}
	}

	o := &models.Occupancy{
		ID:         uuid.New(),
		PropertyID: bed.PropertyID,
		FloorID:    bed.FloorID,
		RoomID:     bed.RoomID,
		BedID:      bed.ID,
	}
	o.RowVersion = 1
	if err := s.occRepo.Create(ctx, o); err != nil {
		return nil, repoError(err, "Occupancy", "create")
	}
	return o, nil
}

func (s *OccupancyService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Occupancy, error) {
	return loadScoped(ctx, scope, id, "Occupancy", s.occRepo.GetByID, occupancyProperty)
}

func (s *OccupancyService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Occupancy], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.occRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Occupancy", "list")
	}
	return newPage(items, total, q), nil
}

func (s *OccupancyService) ListOccupied(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Occupancy], error) {
	return s.List(ctx, scope, q.with("is_occupied", true))
}

func (s *OccupancyService) ListAvailable(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Occupancy], error) {
	return s.List(ctx, scope, q.with("is_occupied", false))
}

// Update moves the row between occupied and free when is_occupied is given,
// then applies a new since-date to an occupied row.
func (s *OccupancyService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateOccupancyRequest) (*models.Occupancy, error) {
	current, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if req.IsOccupied != nil {
		switch {
		case *req.IsOccupied && !current.IsOccupied:
			if req.ResidentID == nil {
				return nil, fieldError("Resident is required", "resident_id", "This field is required.")
			}
			bed, err := s.placement(ctx, scope, current.BedID, nil)
			if err != nil {
				return nil, err
			}
			return s.assignBed(ctx, bed, *req.ResidentID, req.OccupiedSince, req.Notes)
		case *req.IsOccupied && req.ResidentID != nil && current.ResidentID != nil && *req.ResidentID != *current.ResidentID:
			return nil, repoError(utils.ErrBedOccupied, "Occupancy", "update")
		case !*req.IsOccupied && current.IsOccupied:
			return s.Release(ctx, scope, id, dtos.ReleaseOccupancyRequest{Notes: req.Notes})
		}
	}

	if req.OccupiedSince == nil || !current.IsOccupied {
		return current, nil
	}
	updated, err := s.occRepo.UpdateWithRetry(ctx, id, func(o *models.Occupancy) error {
		o.OccupiedSince = req.OccupiedSince
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Occupancy", "update")
	}
	return updated, nil
}

// Delete removes the row, releasing the bed first when it is occupied.
func (s *OccupancyService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.occRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Occupancy", "delete")
	}
	return nil
}
