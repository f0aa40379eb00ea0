package services

import (
	"context"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	svc      *ReportService
	prop     *models.Property
	payments *fakePaymentRepo
	expenses *fakeExpenseRepo
	history  *fakeHistoryRepo
	admin    Scope
}

// newReportFixture builds a 2x2x2 property with three occupied beds and one
// overdue resident, observed on 2024-03-11 in Kolkata.
func newReportFixture() reportFixture {
	prop := &models.Property{
		ID: uuid.New(), Name: "Lakeview", TimeZone: "Asia/Kolkata",
		FloorsCount: 2, RoomsPerFloor: 2, BedsPerRoom: 2,
	}
	layout := BuildLayout(prop)
	_, floors, rooms, beds := newFakeLayout(layout)

	residents := newFakeResidentRepo(
		monthly(uuid.New(), prop.ID, 500, d(2023, time.December, 11)),
		monthly(uuid.New(), prop.ID, 700, d(2024, time.March, 14)),
	)
	inactive := monthly(uuid.New(), prop.ID, 700, d(2023, time.March, 1))
	inactive.IsActive = false
	residents.residents[inactive.ID] = inactive

	occ := newFakeOccupancyRepo()
	for i, b := range layout.Beds[:4] {
		rid := uuid.New()
		occ.rows[uuid.New()] = &models.Occupancy{
			ID: uuid.New(), PropertyID: prop.ID, FloorID: b.FloorID, RoomID: b.RoomID, BedID: b.ID,
			ResidentID: &rid, IsOccupied: i < 3,
		}
	}

	props := newFakePropertyRepo(prop)
	billing := NewBillingService(residents, props, time.UTC)
	billing.now = fixedClock(time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC))

	f := reportFixture{
		prop:     prop,
		payments: &fakePaymentRepo{fakeMoneyRepo: fakeMoneyRepo{sum: 1500}},
		expenses: &fakeExpenseRepo{fakeMoneyRepo: fakeMoneyRepo{sum: 400}},
		history:  &fakeHistoryRepo{},
		admin:    Scope{UserID: uuid.New(), Role: models.RoleAdmin},
	}
	f.svc = NewReportService(ReportRepos{
		Properties:  props,
		Floors:      floors,
		Rooms:       rooms,
		Beds:        beds,
		Occupancies: occ,
		History:     f.history,
		Residents:   residents,
		Payments:    f.payments,
		Expenses:    f.expenses,
		Maintenance: &fakeMaintenanceRepo{open: 2},
	}, billing)
	return f
}

func TestReportService_OccupancyDetailAndSummary(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	tree, err := f.svc.OccupancyDetail(ctx, f.admin, f.prop.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, tree.TotalBeds)
	assert.Equal(t, 3, tree.OccupiedBeds)
	assert.Equal(t, 5, tree.AvailableBeds)
	assert.Equal(t, 37.5, tree.OccupancyPercentage)

	sum, err := f.svc.Summary(ctx, f.admin, f.prop.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, sum.TotalBeds)
	assert.Equal(t, 3, sum.OccupiedBeds)
	assert.Equal(t, 2, sum.ActiveResidents)
	assert.Equal(t, 3, sum.TotalResidents)
}

func TestReportService_TotalsFollowConfiguredCounts(t *testing.T) {
	f := newReportFixture()
	f.prop.FloorsCount = 3
	ctx := context.Background()

	tree, err := f.svc.OccupancyDetail(ctx, f.admin, f.prop.ID)
	require.NoError(t, err)
	sum, err := f.svc.Summary(ctx, f.admin, f.prop.ID)
	require.NoError(t, err)

	assert.Equal(t, 12, tree.TotalBeds)
	assert.Equal(t, 9, tree.AvailableBeds)
	assert.Equal(t, 25.0, tree.OccupancyPercentage)
	assert.Equal(t, tree.TotalBeds, sum.TotalBeds)
	assert.Equal(t, tree.OccupiedBeds, sum.OccupiedBeds)
	assert.Equal(t, tree.AvailableBeds, sum.AvailableBeds)
	assert.Equal(t, sum.TotalBeds, sum.OccupiedBeds+sum.AvailableBeds)
}

func TestReportService_HomeSummary(t *testing.T) {
	f := newReportFixture()

	home, err := f.svc.HomeSummary(context.Background(), f.admin, f.prop.ID)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.March, 11), home.AsOf)
	assert.Equal(t, 37.5, home.OccupancyPercentage)
	assert.Equal(t, 2, home.DueSoonCount)
	assert.Equal(t, 1, home.OverdueCount)
	assert.Equal(t, 1500.0, home.OverdueTotal)
	assert.Equal(t, 1500.0, home.ThisMonthIncome)
	assert.Equal(t, 400.0, home.ThisMonthExpenses)
	assert.Equal(t, 2, home.OpenMaintenance)

	require.Len(t, f.payments.sumCalls, 1)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), f.payments.sumCalls[0][0])
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), f.payments.sumCalls[0][1])
}

func TestReportService_FinancialSummary(t *testing.T) {
	f := newReportFixture()
	f.payments.monthly = []repositories.MonthlyTotal{{Month: "2024-01", Total: 1000}, {Month: "2024-03", Total: 500.25}}
	f.expenses.monthly = []repositories.MonthlyTotal{{Month: "2024-03", Total: 200}}
	f.expenses.categories = []repositories.CategoryTotal{{Category: "repairs", Total: 200, Count: 1}}

	out, err := f.svc.FinancialSummary(context.Background(), f.admin, f.prop.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Year)
	require.Len(t, out.Monthly, 12)
	assert.Equal(t, 1000.0, out.Income[0])
	assert.Equal(t, 500.25, out.Income[2])
	assert.Equal(t, 200.0, out.Expenses[2])
	assert.Equal(t, 300.25, out.Monthly[2].Net)
	assert.Equal(t, 3, out.Monthly[2].Month)
	assert.Equal(t, 1500.25, out.TotalIncome)
	assert.Equal(t, 200.0, out.TotalExpenses)
	assert.Equal(t, 1300.25, out.Net)
	require.Len(t, out.TopExpenseCategories, 1)
	assert.Equal(t, "repairs", out.TopExpenseCategories[0].Category)

	_, err = f.svc.FinancialSummary(context.Background(), f.admin, f.prop.ID, 10000)
	requireFieldError(t, err, "year")
}

func TestReportService_HistoricalDefaultsAndValidation(t *testing.T) {
	f := newReportFixture()
	f.history.moves = []repositories.MonthlyMoves{{Month: "2024-02", MoveIns: 2, MoveOuts: 1}}
	f.payments.monthly = []repositories.MonthlyTotal{{Month: "2023-10", Total: 900}}

	out, err := f.svc.Historical(context.Background(), f.admin, f.prop.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, d(2023, time.October, 1), out.StartDate)
	assert.Equal(t, d(2024, time.March, 11), out.EndDate)
	require.Len(t, out.Months, 6)
	assert.Equal(t, "2023-10", out.Months[0].Month)
	assert.Equal(t, 900.0, out.Months[0].Income)
	assert.Equal(t, "2024-02", out.Months[4].Month)
	assert.Equal(t, 2, out.Months[4].MoveIns)
	assert.Equal(t, 1, out.Months[4].MoveOuts)
	assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), f.history.to)

	start, end := d(2024, time.March, 1), d(2024, time.February, 1)
	_, err = f.svc.Historical(context.Background(), f.admin, f.prop.ID, &start, &end)
	requireFieldError(t, err, "start_date")
}

func TestReportService_HistoricalCapsRange(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	start, end := d(2019, time.April, 1), d(2024, time.March, 31)
	out, err := f.svc.Historical(ctx, f.admin, f.prop.ID, &start, &end)
	require.NoError(t, err)
	assert.Len(t, out.Months, 60)

	start = d(2019, time.March, 31)
	_, err = f.svc.Historical(ctx, f.admin, f.prop.ID, &start, &end)
	requireFieldError(t, err, "end_date")
}

func TestReportService_HidesOtherProperties(t *testing.T) {
	f := newReportFixture()
	other := uuid.New()
	staff := Scope{UserID: uuid.New(), PropertyID: &other, Role: models.RoleStaff}

	_, err := f.svc.Summary(context.Background(), staff, f.prop.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)
}
