package services

import (
	"context"
	"fmt"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

const monthKeyLayout = "2006-01"

// ReportRepos groups the repositories the property reports read from.
type ReportRepos struct {
	Properties  repositories.PropertyRepository
	Floors      repositories.FloorRepository
	Rooms       repositories.RoomRepository
	Beds        repositories.BedRepository
	Occupancies repositories.OccupancyRepository
	History     repositories.OccupancyHistoryRepository
	Residents   repositories.ResidentRepository
	Payments    repositories.PaymentRepository
	Expenses    repositories.ExpenseRepository
	Maintenance repositories.MaintenanceRequestRepository
}

// ReportService folds a property's rows into the read-only aggregations.
type ReportService struct {
	repos   ReportRepos
	billing *BillingService
}

func NewReportService(repos ReportRepos, billing *BillingService) *ReportService {
	return &ReportService{repos: repos, billing: billing}
}

func (s *ReportService) tree(ctx context.Context, p *models.Property) (dtos.OccupancyDetail, error) {
	floors, err := s.repos.Floors.ListByPropertyID(ctx, p.ID)
	if err != nil {
		return dtos.OccupancyDetail{}, utils.Internal("Failed to load floors", err)
	}
	rooms, err := s.repos.Rooms.ListByPropertyID(ctx, p.ID)
	if err != nil {
		return dtos.OccupancyDetail{}, utils.Internal("Failed to load rooms", err)
	}
	beds, err := s.repos.Beds.ListByPropertyID(ctx, p.ID)
	if err != nil {
		return dtos.OccupancyDetail{}, utils.Internal("Failed to load beds", err)
	}
	occs, err := s.repos.Occupancies.ListByPropertyID(ctx, p.ID)
	if err != nil {
		return dtos.OccupancyDetail{}, utils.Internal("Failed to load occupancy", err)
	}
	return BuildOccupancyTree(p, floors, rooms, beds, occs), nil
}

// OccupancyDetail returns the property → floor → room → bed tree.
func (s *ReportService) OccupancyDetail(ctx context.Context, scope Scope, id uuid.UUID) (*dtos.OccupancyDetail, error) {
	p, err := loadProperty(ctx, s.repos.Properties, scope, id)
	if err != nil {
		return nil, err
	}
	tree, err := s.tree(ctx, p)
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

// Summary reports configured beds, live occupancy and resident counts.
func (s *ReportService) Summary(ctx context.Context, scope Scope, id uuid.UUID) (*dtos.PropertySummary, error) {
	p, err := loadProperty(ctx, s.repos.Properties, scope, id)
	if err != nil {
		return nil, err
	}
	tree, err := s.tree(ctx, p)
	if err != nil {
		return nil, err
	}
	active, total, err := s.repos.Residents.Counts(ctx, p.ID)
	if err != nil {
		return nil, utils.Internal("Failed to count residents", err)
	}
	return &dtos.PropertySummary{
		ID:              p.ID,
		Name:            p.Name,
		TotalBeds:       tree.TotalBeds,
		OccupiedBeds:    tree.OccupiedBeds,
		AvailableBeds:   tree.AvailableBeds,
		ActiveResidents: active,
		TotalResidents:  total,
	}, nil
}

// HomeSummary is the dashboard snapshot of one property as of today.
func (s *ReportService) HomeSummary(ctx context.Context, scope Scope, id uuid.UUID) (*dtos.HomeSummary, error) {
	p, err := loadProperty(ctx, s.repos.Properties, scope, id)
	if err != nil {
		return nil, err
	}
	tree, err := s.tree(ctx, p)
	if err != nil {
		return nil, err
	}
	active, _, err := s.repos.Residents.Counts(ctx, p.ID)
	if err != nil {
		return nil, utils.Internal("Failed to count residents", err)
	}
	statuses, err := s.billing.Evaluate(ctx, &p.ID)
	if err != nil {
		return nil, err
	}

	today := s.billing.Today(p)
	start, end := monthBounds(today)
	income, err := s.repos.Payments.Sum(ctx, &p.ID, start, end)
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	expenses, err := s.repos.Expenses.Sum(ctx, &p.ID, start, end)
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	open, err := s.repos.Maintenance.CountOpen(ctx, p.ID)
	if err != nil {
		return nil, utils.Internal("Failed to count maintenance requests", err)
	}

	out := &dtos.HomeSummary{
		PropertyID:          p.ID,
		PropertyName:        p.Name,
		AsOf:                today,
		TotalBeds:           tree.TotalBeds,
		OccupiedBeds:        tree.OccupiedBeds,
		AvailableBeds:       tree.AvailableBeds,
		OccupancyPercentage: tree.OccupancyPercentage,
		ActiveResidents:     active,
		ThisMonthIncome:     utils.Round2(income),
		ThisMonthExpenses:   utils.Round2(expenses),
		OpenMaintenance:     open,
	}
	for _, rb := range statuses {
		if rb.Status.DueSoon {
			out.DueSoonCount++
		}
		if rb.Status.Overdue() {
			out.OverdueCount++
			out.OverdueTotal += rb.Status.OverdueAmount
		}
	}
	out.OverdueTotal = utils.Round2(out.OverdueTotal)
	return out, nil
}

// FinancialSummary rolls a year of payments and expenses up by month.
// A zero year means the current year in the property's zone.
func (s *ReportService) FinancialSummary(ctx context.Context, scope Scope, id uuid.UUID, year int) (*dtos.FinancialSummary, error) {
	p, err := loadProperty(ctx, s.repos.Properties, scope, id)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.billing.Today(p).Year()
	}
	if year < 1 || year > 9999 {
		return nil, fieldError("Invalid year", "year", "Enter a year between 1 and 9999.")
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	income, err := s.repos.Payments.MonthlyTotals(ctx, p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	expenses, err := s.repos.Expenses.MonthlyTotals(ctx, p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	categories, err := s.repos.Expenses.TotalsByCategory(ctx, &p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}

	incomeByMonth := monthlySeries(income)
	expenseByMonth := monthlySeries(expenses)
	out := &dtos.FinancialSummary{
		PropertyID:           p.ID,
		Year:                 year,
		Monthly:              make([]dtos.MonthlyFinancial, 12),
		Income:               make([]float64, 12),
		Expenses:             make([]float64, 12),
		TopExpenseCategories: categoryDTOs(categories, constants.TopExpenseCategories),
	}
	for i := 0; i < 12; i++ {
		in, ex := utils.Round2(incomeByMonth[i]), utils.Round2(expenseByMonth[i])
		out.Income[i] = in
		out.Expenses[i] = ex
		out.Monthly[i] = dtos.MonthlyFinancial{Month: i + 1, Income: in, Expenses: ex, Net: utils.Round2(in - ex)}
		out.TotalIncome += in
		out.TotalExpenses += ex
	}
	out.TotalIncome = utils.Round2(out.TotalIncome)
	out.TotalExpenses = utils.Round2(out.TotalExpenses)
	out.Net = utils.Round2(out.TotalIncome - out.TotalExpenses)
	return out, nil
}

// monthlySeries places "YYYY-MM" totals into a January-first array.
func monthlySeries(totals []repositories.MonthlyTotal) [12]float64 {
	var out [12]float64
	for _, t := range totals {
		m, err := time.Parse(monthKeyLayout, t.Month)
		if err != nil {
			continue
		}
		out[m.Month()-1] += t.Total
	}
	return out
}

// Historical reports month-by-month income, expenses and move counts over
// [start, end]. Nil bounds default to the last few months through today.
func (s *ReportService) Historical(ctx context.Context, scope Scope, id uuid.UUID, start, end *models.Date) (*dtos.HistoricalSummary, error) {
	p, err := loadProperty(ctx, s.repos.Properties, scope, id)
	if err != nil {
		return nil, err
	}
	today := s.billing.Today(p)
	if end == nil {
		end = &today
	}
	if start == nil {
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -constants.HistoricalDefaultMonths, 0)
		start = &models.Date{Time: first}
	}
	if start.After(end.Time) {
		return nil, fieldError("Invalid date range", "start_date", "start_date must be on or before end_date.")
	}
	span := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if span > constants.HistoricalMaxMonths {
		return nil, fieldError("Date range too long", "end_date",
			fmt.Sprintf("The range may cover at most %d months.", constants.HistoricalMaxMonths))
	}

	from, to := start.Time, end.Time.AddDate(0, 0, 1)
	income, err := s.repos.Payments.MonthlyTotals(ctx, p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	expenses, err := s.repos.Expenses.MonthlyTotals(ctx, p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to total expenses", err)
	}
	moves, err := s.repos.History.MonthlyMoves(ctx, p.ID, from, to)
	if err != nil {
		return nil, utils.Internal("Failed to load occupancy history", err)
	}

	incomeBy := make(map[string]float64, len(income))
	for _, t := range income {
		incomeBy[t.Month] += t.Total
	}
	expenseBy := make(map[string]float64, len(expenses))
	for _, t := range expenses {
		expenseBy[t.Month] += t.Total
	}
	movesBy := make(map[string]repositories.MonthlyMoves, len(moves))
	for _, m := range moves {
		movesBy[m.Month] = m
	}

	out := &dtos.HistoricalSummary{
		PropertyID: p.ID,
		StartDate:  *start,
		EndDate:    *end,
		Months:     make([]dtos.HistoricalMonth, 0),
	}
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format(monthKeyLayout)
		in, ex := utils.Round2(incomeBy[key]), utils.Round2(expenseBy[key])
		out.Months = append(out.Months, dtos.HistoricalMonth{
			Month:    key,
			Income:   in,
			Expenses: ex,
			Net:      utils.Round2(in - ex),
			MoveIns:  movesBy[key].MoveIns,
			MoveOuts: movesBy[key].MoveOuts,
		})
		out.TotalIncome += in
		out.TotalExpenses += ex
	}
	out.TotalIncome = utils.Round2(out.TotalIncome)
	out.TotalExpenses = utils.Round2(out.TotalExpenses)
	out.Net = utils.Round2(out.TotalIncome - out.TotalExpenses)
	return out, nil
}
