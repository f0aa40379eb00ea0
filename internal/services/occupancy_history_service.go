package services

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/google/uuid"
)

// OccupancyHistoryService reads the append-only occupancy log.
type OccupancyHistoryService struct {
	historyRepo repositories.OccupancyHistoryRepository
}

func NewOccupancyHistoryService(historyRepo repositories.OccupancyHistoryRepository) *OccupancyHistoryService {
	return &OccupancyHistoryService{historyRepo: historyRepo}
}

func (s *OccupancyHistoryService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.OccupancyHistory, error) {
	return loadScoped(ctx, scope, id, "Occupancy history", s.historyRepo.GetByID,
		func(h *models.OccupancyHistory) uuid.UUID { return h.PropertyID })
}

func (s *OccupancyHistoryService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.OccupancyHistory], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.historyRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Occupancy history", "list")
	}
	return newPage(items, total, q), nil
}
