package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PropertyController serves property CRUD plus the per-property reports.
type PropertyController struct {
	propertyService *services.PropertyService
	reportService   *services.ReportService
	reminderService *services.ReminderService
	validate        *validator.Validate
	pageSize        int
}

func NewPropertyController(
	propertyService *services.PropertyService,
	reportService *services.ReportService,
	reminderService *services.ReminderService,
	pageSize int,
) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
		reportService:   reportService,
		reminderService: reminderService,
		validate:        validator.New(),
		pageSize:        pageSize,
	}
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.PropertyListSpec, c.pageSize, c.propertyService.List)
}

// POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.propertyService.Create)
}

// GET /api/v1/properties/{id}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Property", c.propertyService.Get)
}

// PATCH /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Property", c.propertyService.Update)
}

// DELETE /api/v1/properties/{id}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Property", c.propertyService.Delete)
}

// GET /api/v1/properties/{id}/summary
func (c *PropertyController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Property", c.reportService.Summary)
}

// GET /api/v1/properties/{id}/occupancy_detail
func (c *PropertyController) OccupancyDetailHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Property", c.reportService.OccupancyDetail)
}

// GET /api/v1/properties/{id}/home_summary
func (c *PropertyController) HomeSummaryHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Property", c.reportService.HomeSummary)
}

// GET /api/v1/properties/{id}/financial_summary?year=YYYY
func (c *PropertyController) FinancialSummaryHandler(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.HandleAppError(w, queryError("year", "Enter a valid year."))
			return
		}
		year = n
	}
	serveGet(w, r, "Property", func(ctx context.Context, scope services.Scope, id uuid.UUID) (*dtos.FinancialSummary, error) {
		return c.reportService.FinancialSummary(ctx, scope, id, year)
	})
}

// GET /api/v1/properties/{id}/historical?start_date=&end_date=
func (c *PropertyController) HistoricalHandler(w http.ResponseWriter, r *http.Request) {
	start, err := queryDate(r, "start_date")
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	end, err := queryDate(r, "end_date")
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	serveGet(w, r, "Property", func(ctx context.Context, scope services.Scope, id uuid.UUID) (*dtos.HistoricalSummary, error) {
		return c.reportService.Historical(ctx, scope, id, start, end)
	})
}

// POST /api/v1/properties/{id}/reminders
func (c *PropertyController) SendRemindersHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Property", c.reminderService.SendReminders)
}
