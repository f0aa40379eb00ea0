package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/go-playground/validator/v10"
)

type OccupancyController struct {
	occupancyService *services.OccupancyService
	historyService   *services.OccupancyHistoryService
	validate         *validator.Validate
	pageSize         int
}

func NewOccupancyController(
	occupancyService *services.OccupancyService,
	historyService *services.OccupancyHistoryService,
	pageSize int,
) *OccupancyController {
	return &OccupancyController{
		occupancyService: occupancyService,
		historyService:   historyService,
		validate:         validator.New(),
		pageSize:         pageSize,
	}
}

// GET /api/v1/occupancy
func (c *OccupancyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.OccupancyListSpec, c.pageSize, c.occupancyService.List)
}

// GET /api/v1/occupancy/occupied
func (c *OccupancyController) ListOccupiedHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.OccupancyListSpec, c.pageSize, c.occupancyService.ListOccupied)
}

// GET /api/v1/occupancy/available
func (c *OccupancyController) ListAvailableHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.OccupancyListSpec, c.pageSize, c.occupancyService.ListAvailable)
}

// POST /api/v1/occupancy
func (c *OccupancyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.occupancyService.Create)
}

// GET /api/v1/occupancy/{id}
func (c *OccupancyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Occupancy", c.occupancyService.Get)
}

// PATCH /api/v1/occupancy/{id}
func (c *OccupancyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Occupancy", c.occupancyService.Update)
}

// DELETE /api/v1/occupancy/{id}
func (c *OccupancyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Occupancy", c.occupancyService.Delete)
}

// POST /api/v1/occupancy/assign
func (c *OccupancyController) AssignHandler(w http.ResponseWriter, r *http.Request) {
	serveBody(w, r, c.validate, http.StatusOK, c.occupancyService.Assign)
}

// POST /api/v1/occupancy/{id}/release
func (c *OccupancyController) ReleaseHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Occupancy", c.occupancyService.Release)
}

// GET /api/v1/occupancy-history
func (c *OccupancyController) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.OccupancyHistoryListSpec, c.pageSize, c.historyService.List)
}

// GET /api/v1/occupancy-history/{id}
func (c *OccupancyController) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Occupancy history", c.historyService.Get)
}
