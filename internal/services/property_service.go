package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Layout defaults applied when a create request omits the counts.
const (
	defaultFloorsCount   = 5
	defaultRoomsPerFloor = 2
	defaultBedsPerRoom   = 3
)

type PropertyService struct {
	propRepo    repositories.PropertyRepository
	geocoder    Geocoder
	defaultZone string
}

// NewPropertyService builds the service. geocoder may be nil, in which case
// properties without coordinates keep none.
func NewPropertyService(propRepo repositories.PropertyRepository, geocoder Geocoder, defaultZone string) *PropertyService {
	if defaultZone == "" {
		defaultZone = "UTC"
	}
	return &PropertyService{propRepo: propRepo, geocoder: geocoder, defaultZone: defaultZone}
}

// loadProperty fetches a property the caller is allowed to see.
func loadProperty(ctx context.Context, repo repositories.PropertyRepository, scope Scope, id uuid.UUID) (*models.Property, error) {
	if !scope.CanAccess(id) {
		return nil, utils.NotFound("Property not found")
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal("Failed to load property", err)
	}
	if p == nil {
		return nil, utils.NotFound("Property not found")
	}
	return p, nil
}

// Create stores the property and provisions its floors, rooms and beds.
// Callers pinned to a single property may not create new ones.
func (s *PropertyService) Create(ctx context.Context, scope Scope, req dtos.CreatePropertyRequest) (*models.Property, error) {
	if _, restricted := scope.Restricted(); restricted {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Property-scoped users cannot create properties",
		}
	}
	p := &models.Property{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		FloorsCount:   intOr(req.FloorsCount, defaultFloorsCount),
		RoomsPerFloor: intOr(req.RoomsPerFloor, defaultRoomsPerFloor),
		BedsPerRoom:   intOr(req.BedsPerRoom, defaultBedsPerRoom),
		Description:   req.Description,
		IsActive:      boolOr(req.IsActive, true),
	}
	p.RowVersion = 1

	if p.Latitude == nil || p.Longitude == nil {
		s.geocode(ctx, p)
	}
	if req.TimeZone != nil {
		p.TimeZone = *req.TimeZone
	} else {
		p.TimeZone = ZoneFor(p.Latitude, p.Longitude, s.defaultZone)
	}

	layout := BuildLayout(p)
	if err := s.propRepo.CreateWithLayout(ctx, p, layout); err != nil {
		return nil, repoError(err, "Property", "create")
	}

	utils.Logger.WithFields(logrus.Fields{
		"property_id": p.ID,
		"floors":      len(layout.Floors),
		"rooms":       len(layout.Rooms),
		"beds":        len(layout.Beds),
	}).Info("Provisioned property layout")
	return p, nil
}

func (s *PropertyService) geocode(ctx context.Context, p *models.Property) {
	if s.geocoder == nil {
		return
	}
	address := strings.Join([]string{p.Address, p.City, p.State, p.ZipCode}, ", ")
	lat, lng, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Geocoding failed for property %s", p.Name)
		return
	}
	p.Latitude, p.Longitude = &lat, &lng
}

func (s *PropertyService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Property, error) {
	return loadProperty(ctx, s.propRepo, scope, id)
}

func (s *PropertyService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Property], error) {
	q = q.scoped(scope, "id")
	items, total, err := s.propRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Property", "list")
	}
	return newPage(items, total, q), nil
}

// Update patches the property. Changing the layout counts does not
// re-provision existing floors, rooms or beds.
func (s *PropertyService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	if _, err := loadProperty(ctx, s.propRepo, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.propRepo.UpdateWithRetry(ctx, id, func(p *models.Property) error {
		if req.Name != nil {
			p.Name = strings.TrimSpace(*req.Name)
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.City != nil {
			p.City = *req.City
		}
		if req.State != nil {
			p.State = *req.State
		}
		if req.ZipCode != nil {
			p.ZipCode = *req.ZipCode
		}
		moved := req.Latitude != nil || req.Longitude != nil
		if req.Latitude != nil {
			p.Latitude = req.Latitude
		}
		if req.Longitude != nil {
			p.Longitude = req.Longitude
		}
		switch {
		case req.TimeZone != nil:
			p.TimeZone = *req.TimeZone
		case moved:
			p.TimeZone = ZoneFor(p.Latitude, p.Longitude, p.TimeZone)
		}
		if req.FloorsCount != nil {
			p.FloorsCount = *req.FloorsCount
		}
		if req.RoomsPerFloor != nil {
			p.RoomsPerFloor = *req.RoomsPerFloor
		}
		if req.BedsPerRoom != nil {
			p.BedsPerRoom = *req.BedsPerRoom
		}
		if req.Description != nil {
			p.Description = req.Description
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Property", "update")
	}
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := loadProperty(ctx, s.propRepo, scope, id); err != nil {
		return err
	}
	if err := s.propRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Property", "delete")
	}
	return nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
