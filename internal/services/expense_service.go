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

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	propRepo    repositories.PropertyRepository
	defaultLoc  *time.Location
	now         func() time.Time
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository, propRepo repositories.PropertyRepository, defaultLoc *time.Location) *ExpenseService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &ExpenseService{expenseRepo: expenseRepo, propRepo: propRepo, defaultLoc: defaultLoc, now: time.Now}
}

func expenseProperty(e *models.Expense) uuid.UUID { return e.PropertyID }

func (s *ExpenseService) Create(ctx context.Context, scope Scope, req dtos.CreateExpenseRequest) (*models.Expense, error) {
	if _, err := loadProperty(ctx, s.propRepo, scope, req.PropertyID); err != nil {
		return nil, err
	}
	method := models.PaymentMethodCash
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	e := &models.Expense{
		ID:            uuid.New(),
		PropertyID:    req.PropertyID,
		Amount:        utils.Round2(req.Amount),
		Category:      req.Category,
		Description:   req.Description,
		ExpenseDate:   *req.ExpenseDate,
		PaidBy:        req.PaidBy,
		PaymentMethod: method,
		ReceiptURL:    req.ReceiptURL,
		Notes:         req.Notes,
	}
	e.RowVersion = 1
	if err := s.expenseRepo.Create(ctx, e); err != nil {
		return nil, repoError(err, "Expense", "create")
	}
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Expense, error) {
	return loadScoped(ctx, scope, id, "Expense", s.expenseRepo.GetByID, expenseProperty)
}

func (s *ExpenseService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Expense], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.expenseRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Expense", "list")
	}
	return newPage(items, total, q), nil
}

func (s *ExpenseService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateExpenseRequest) (*models.Expense, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.expenseRepo.UpdateWithRetry(ctx, id, func(e *models.Expense) error {
		if req.Amount != nil {
			e.Amount = utils.Round2(*req.Amount)
		}
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Description != nil {
			e.Description = req.Description
		}
		if req.ExpenseDate != nil {
			e.ExpenseDate = *req.ExpenseDate
		}
		if req.PaidBy != nil {
			e.PaidBy = req.PaidBy
		}
		if req.PaymentMethod != nil {
			e.PaymentMethod = *req.PaymentMethod
		}
		if req.ReceiptURL != nil {
			e.ReceiptURL = req.ReceiptURL
		}
		if req.Notes != nil {
			e.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Expense", "update")
	}
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Expense", "delete")
	}
	return nil
}

// ByCategory totals expenses per category, largest first.
func (s *ExpenseService) ByCategory(ctx context.Context, scope Scope, propertyID *uuid.UUID) ([]dtos.CategoryTotal, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	totals, err := s.expenseRepo.TotalsByCategory(ctx, filter, time.Time{}, time.Time{})
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	return categoryDTOs(totals, 0), nil
}

// Summary reports all-time and current-month expense totals.
func (s *ExpenseService) Summary(ctx context.Context, scope Scope, propertyID *uuid.UUID) (*dtos.ExpenseSummary, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.Sum(ctx, filter, time.Time{}, time.Time{})
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	start, end := monthBounds(currentDay(ctx, s.propRepo, filter, s.defaultLoc, s.now))
	month, err := s.expenseRepo.Sum(ctx, filter, start, end)
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	return &dtos.ExpenseSummary{TotalExpenses: utils.Round2(total), ThisMonthExpenses: utils.Round2(month)}, nil
}

func categoryDTOs(totals []repositories.CategoryTotal, limit int) []dtos.CategoryTotal {
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	out := make([]dtos.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, dtos.CategoryTotal{Category: t.Category, Total: utils.Round2(t.Total), Count: t.Count})
	}
	return out
}

// currentDay is today in the zone of propertyID, or in fallback when the
// query spans every property.
func currentDay(
	ctx context.Context,
	propRepo repositories.PropertyRepository,
	propertyID *uuid.UUID,
	fallback *time.Location,
	now func() time.Time,
) models.Date {
	loc := fallback
	if propertyID != nil {
		if p, err := propRepo.GetByID(ctx, *propertyID); err == nil && p != nil {
			loc = p.Location(fallback)
		}
	}
	return models.DateOf(now().In(loc))
}

// monthBounds returns the first day of day's month and of the next month.
func monthBounds(day models.Date) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
