package controllers

import (
	"context"
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ResidentController struct {
	residentService *services.ResidentService
	billingService  *services.BillingService
	validate        *validator.Validate
	pageSize        int
}

func NewResidentController(residentService *services.ResidentService, billingService *services.BillingService, pageSize int) *ResidentController {
	return &ResidentController{
		residentService: residentService,
		billingService:  billingService,
		validate:        validator.New(),
		pageSize:        pageSize,
	}
}

// GET /api/v1/residents
func (c *ResidentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.ResidentListSpec, c.pageSize, c.residentService.List)
}

// POST /api/v1/residents
func (c *ResidentController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.residentService.Create)
}

// GET /api/v1/residents/{id}
func (c *ResidentController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Resident", c.residentService.Get)
}

// PATCH /api/v1/residents/{id}
func (c *ResidentController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Resident", c.residentService.Update)
}

// DELETE /api/v1/residents/{id}
func (c *ResidentController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Resident", c.residentService.Delete)
}

// GET /api/v1/residents/due_soon?property_id=
func (c *ResidentController) DueSoonHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.billingService.DueSoon)
}

// GET /api/v1/residents/overdue?property_id=
func (c *ResidentController) OverdueHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.billingService.Overdue)
}

// servePropertyAggregate runs an aggregation narrowed by an optional
// property_id query parameter.
func servePropertyAggregate[T any](
	w http.ResponseWriter,
	r *http.Request,
	aggregate func(context.Context, services.Scope, *uuid.UUID) (T, error),
) {
	propertyID, err := queryUUID(r, "property_id")
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out, err := aggregate(r.Context(), scopeFromRequest(r), propertyID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
