package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
)

type ExpenseController struct {
	expenseService *services.ExpenseService
	validate       *validator.Validate
	pageSize       int
}

func NewExpenseController(expenseService *services.ExpenseService, pageSize int) *ExpenseController {
	return &ExpenseController{expenseService: expenseService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/expenses
func (c *ExpenseController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.ExpenseListSpec, c.pageSize, c.expenseService.List)
}

// POST /api/v1/expenses
func (c *ExpenseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.expenseService.Create)
}

// GET /api/v1/expenses/{id}
func (c *ExpenseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Expense", c.expenseService.Get)
}

// PATCH /api/v1/expenses/{id}
func (c *ExpenseController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Expense", c.expenseService.Update)
}

// DELETE /api/v1/expenses/{id}
func (c *ExpenseController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Expense", c.expenseService.Delete)
}

// GET /api/v1/expenses/by_category?property_id=
func (c *ExpenseController) ByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.expenseService.ByCategory)
}

// GET /api/v1/expenses/summary?property_id=
func (c *ExpenseController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.expenseService.Summary)
}

type PaymentController struct {
	paymentService *services.PaymentService
	validate       *validator.Validate
	pageSize       int
}

func NewPaymentController(paymentService *services.PaymentService, pageSize int) *PaymentController {
	return &PaymentController{paymentService: paymentService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/payments
func (c *PaymentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.PaymentListSpec, c.pageSize, c.paymentService.List)
}

// POST /api/v1/payments
func (c *PaymentController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.paymentService.Create)
}

// GET /api/v1/payments/{id}
func (c *PaymentController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Payment", c.paymentService.Get)
}

// PATCH /api/v1/payments/{id}
func (c *PaymentController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Payment", c.paymentService.Update)
}

// DELETE /api/v1/payments/{id}
func (c *PaymentController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Payment", c.paymentService.Delete)
}

// GET /api/v1/payments/summary?property_id=
func (c *PaymentController) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	servePropertyAggregate(w, r, c.paymentService.Summary)
}

// GET /api/v1/payments/by_resident?resident_id=
func (c *PaymentController) ByResidentHandler(w http.ResponseWriter, r *http.Request) {
	residentID, err := queryUUID(r, "resident_id")
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if residentID == nil {
		utils.HandleAppError(w, queryError("resident_id", "This parameter is required."))
		return
	}

	total, err := c.paymentService.ByResident(r.Context(), scopeFromRequest(r), *residentID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, total)
}
