package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/go-playground/validator/v10"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	validate           *validator.Validate
	pageSize           int
}

func NewMaintenanceController(maintenanceService *services.MaintenanceService, pageSize int) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		validate:           validator.New(),
		pageSize:           pageSize,
	}
}

// GET /api/v1/maintenance-requests
func (c *MaintenanceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.MaintenanceRequestListSpec, c.pageSize, c.maintenanceService.List)
}

// GET /api/v1/maintenance-requests/open_requests
func (c *MaintenanceController) OpenRequestsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.OpenMaintenanceRequestListSpec, c.pageSize, c.maintenanceService.OpenRequests)
}

// GET /api/v1/maintenance-requests/by_priority?property_id=
func (c *MaintenanceController) ByPriorityHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.maintenanceService.ByPriority)
}

// POST /api/v1/maintenance-requests
func (c *MaintenanceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.maintenanceService.Create)
}

// GET /api/v1/maintenance-requests/{id}
func (c *MaintenanceController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Maintenance request", c.maintenanceService.Get)
}

// PATCH /api/v1/maintenance-requests/{id}
func (c *MaintenanceController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Maintenance request", c.maintenanceService.Update)
}

// POST /api/v1/maintenance-requests/{id}/resolve
func (c *MaintenanceController) ResolveHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Maintenance request", c.maintenanceService.Resolve)
}

// DELETE /api/v1/maintenance-requests/{id}
func (c *MaintenanceController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Maintenance request", c.maintenanceService.Delete)
}
