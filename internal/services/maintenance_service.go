package services

import (
	"context"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type MaintenanceService struct {
	maintRepo    repositories.MaintenanceRequestRepository
	propRepo     repositories.PropertyRepository
	residentRepo repositories.ResidentRepository
	roomRepo     repositories.RoomRepository
	now          func() time.Time
}

func NewMaintenanceService(
	maintRepo repositories.MaintenanceRequestRepository,
	propRepo repositories.PropertyRepository,
	residentRepo repositories.ResidentRepository,
	roomRepo repositories.RoomRepository,
) *MaintenanceService {
	return &MaintenanceService{
		maintRepo:    maintRepo,
		propRepo:     propRepo,
		residentRepo: residentRepo,
		roomRepo:     roomRepo,
		now:          time.Now,
	}
}

func maintenanceProperty(m *models.MaintenanceRequest) uuid.UUID { return m.PropertyID }

func isFinished(status models.MaintenanceStatus) bool {
	return status == models.MaintenanceStatusResolved || status == models.MaintenanceStatusClosed
}

// checkLinks rejects a resident or room that lives in another property.
func (s *MaintenanceService) checkLinks(ctx context.Context, propertyID uuid.UUID, residentID, roomID *uuid.UUID) error {
	if residentID != nil {
		res, err := s.residentRepo.GetByID(ctx, *residentID)
		if err != nil {
			return utils.Internal("Failed to load resident", err)
		}
		if res == nil || res.PropertyID != propertyID {
			return fieldError("Resident does not belong to this property", "resident_id",
				"The selected resident is not part of this property.")
		}
	}
	if roomID != nil {
		room, err := s.roomRepo.GetByID(ctx, *roomID)
		if err != nil {
			return utils.Internal("Failed to load room", err)
		}
		if room == nil || room.PropertyID != propertyID {
			return fieldError("Room does not belong to this property", "room_id",
				"The selected room is not part of this property.")
		}
	}
	return nil
}

func (s *MaintenanceService) Create(ctx context.Context, scope Scope, req dtos.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if _, err := loadProperty(ctx, s.propRepo, scope, req.PropertyID); err != nil {
		return nil, err
	}
	if err := s.checkLinks(ctx, req.PropertyID, req.ResidentID, req.RoomID); err != nil {
		return nil, err
	}
	m := &models.MaintenanceRequest{
		ID:            uuid.New(),
		PropertyID:    req.PropertyID,
		ResidentID:    req.ResidentID,
		RoomID:        req.RoomID,
		Category:      req.Category,
		Description:   req.Description,
		Priority:      models.PriorityMedium,
		Status:        models.MaintenanceStatusOpen,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Notes:         req.Notes,
	}
	if req.Priority != nil {
		m.Priority = *req.Priority
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if isFinished(m.Status) {
		m.ResolvedDate = utils.Ptr(s.now().UTC())
	}
	m.RowVersion = 1
	if err := s.maintRepo.Create(ctx, m); err != nil {
		return nil, repoError(err, "Maintenance request", "create")
	}
	return m, nil
}

func (s *MaintenanceService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return loadScoped(ctx, scope, id, "Maintenance request", s.maintRepo.GetByID, maintenanceProperty)
}

func (s *MaintenanceService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.MaintenanceRequest], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.maintRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Maintenance request", "list")
	}
	return newPage(items, total, q), nil
}

// OpenRequests pages requests that are open or in progress.
func (s *MaintenanceService) OpenRequests(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.MaintenanceRequest], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.maintRepo.ListOpen(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Maintenance request", "list")
	}
	return newPage(items, total, q), nil
}

func (s *MaintenanceService) ByPriority(ctx context.Context, scope Scope, propertyID *uuid.UUID) ([]repositories.PriorityCount, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	counts, err := s.maintRepo.CountByPriority(ctx, filter)
	if err != nil {
		return nil, utils.Internal("Failed to count maintenance requests", err)
	}
	return counts, nil
}

func (s *MaintenanceService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	current, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkLinks(ctx, current.PropertyID, req.ResidentID, req.RoomID); err != nil {
		return nil, err
	}
	updated, err := s.maintRepo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		if req.ResidentID != nil {
			m.ResidentID = req.ResidentID
		}
		if req.RoomID != nil {
			m.RoomID = req.RoomID
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Priority != nil {
			m.Priority = *req.Priority
		}
		if req.Status != nil {
			m.Status = *req.Status
			switch {
			case isFinished(m.Status) && m.ResolvedDate == nil:
				m.ResolvedDate = utils.Ptr(s.now().UTC())
			case !isFinished(m.Status):
				m.ResolvedDate = nil
			}
		}
		if req.EstimatedCost != nil {
			m.EstimatedCost = req.EstimatedCost
		}
		if req.ActualCost != nil {
			m.ActualCost = req.ActualCost
		}
		if req.Notes != nil {
			m.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Maintenance request", "update")
	}
	return updated, nil
}

// Resolve marks the request resolved and stamps resolved_date.
func (s *MaintenanceService) Resolve(ctx context.Context, scope Scope, id uuid.UUID, req dtos.ResolveMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.maintRepo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		m.Status = models.MaintenanceStatusResolved
		m.ResolvedDate = utils.Ptr(s.now().UTC())
		if req.ActualCost != nil {
			m.ActualCost = req.ActualCost
		}
		if req.Notes != nil {
			m.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Maintenance request", "resolve")
	}
	return updated, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.maintRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Maintenance request", "delete")
	}
	return nil
}
