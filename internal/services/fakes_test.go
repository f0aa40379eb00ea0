package services

import (
	"context"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// The fakes embed the repository interface so unused methods panic if a
// test reaches them unexpectedly.

type fakePropertyRepo struct {
	repositories.PropertyRepository
	props   map[uuid.UUID]*models.Property
	layouts map[uuid.UUID]*models.PropertyLayout
}

func newFakePropertyRepo(props ...*models.Property) *fakePropertyRepo {
	r := &fakePropertyRepo{props: map[uuid.UUID]*models.Property{}, layouts: map[uuid.UUID]*models.PropertyLayout{}}
	for _, p := range props {
		r.props[p.ID] = p
	}
	return r
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	return r.props[id], nil
}

func (r *fakePropertyRepo) CreateWithLayout(_ context.Context, p *models.Property, layout *models.PropertyLayout) error {
	r.props[p.ID] = p
	r.layouts[p.ID] = layout
	return nil
}

type fakeLayoutRepos struct {
	floors []*models.Floor
	rooms  []*models.Room
	beds   []*models.Bed
}

type fakeFloorRepo struct {
	repositories.FloorRepository
	*fakeLayoutRepos
}

func (r fakeFloorRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Floor, error) {
	for _, f := range r.floors {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r fakeFloorRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.Floor, error) {
	out := []*models.Floor{}
	for _, f := range r.floors {
		if f.PropertyID == propertyID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	repositories.RoomRepository
	*fakeLayoutRepos
	created []*models.Room
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Room, error) {
	for _, rm := range r.rooms {
		if rm.ID == id {
			return rm, nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) Create(_ context.Context, rm *models.Room) error {
	r.created = append(r.created, rm)
	return nil
}

func (r *fakeRoomRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.Room, error) {
	out := []*models.Room{}
	for _, rm := range r.rooms {
		if rm.PropertyID == propertyID {
			out = append(out, rm)
		}
	}
	return out, nil
}

type fakeBedRepo struct {
	repositories.BedRepository
	*fakeLayoutRepos
}

func (r fakeBedRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Bed, error) {
	for _, b := range r.beds {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r fakeBedRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Bed) error) (*models.Bed, error) {
	for _, b := range r.beds {
		if b.ID == id {
			if err := mutate(b); err != nil {
				return nil, err
			}
			b.RowVersion++
			return b, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r fakeBedRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.Bed, error) {
	out := []*models.Bed{}
	for _, b := range r.beds {
		if b.PropertyID == propertyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func newFakeLayout(layout *models.PropertyLayout) (*fakeLayoutRepos, fakeFloorRepo, *fakeRoomRepo, fakeBedRepo) {
	l := &fakeLayoutRepos{floors: layout.Floors, rooms: layout.Rooms, beds: layout.Beds}
	return l, fakeFloorRepo{fakeLayoutRepos: l}, &fakeRoomRepo{fakeLayoutRepos: l}, fakeBedRepo{fakeLayoutRepos: l}
}

type fakeResidentRepo struct {
	repositories.ResidentRepository
	residents map[uuid.UUID]*models.Resident
	paid      map[uuid.UUID]float64
}

func newFakeResidentRepo(residents ...*models.Resident) *fakeResidentRepo {
	r := &fakeResidentRepo{residents: map[uuid.UUID]*models.Resident{}, paid: map[uuid.UUID]float64{}}
	for _, res := range residents {
		r.residents[res.ID] = res
	}
	return r
}

func (r *fakeResidentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Resident, error) {
	return r.residents[id], nil
}

func (r *fakeResidentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.residents[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.residents, id)
	return nil
}

func (r *fakeResidentRepo) ListBillable(_ context.Context, propertyID *uuid.UUID) ([]*models.ResidentLedger, error) {
	out := []*models.ResidentLedger{}
	for _, res := range r.residents {
		if propertyID != nil && res.PropertyID != *propertyID {
			continue
		}
		if !res.IsActive || res.RentType != models.RentTypeMonthly || res.MoveOutDate != nil {
			continue
		}
		out = append(out, &models.ResidentLedger{Resident: res, TotalPaid: r.paid[res.ID]})
	}
	return out, nil
}

func (r *fakeResidentRepo) Counts(_ context.Context, propertyID uuid.UUID) (int, int, error) {
	active, total := 0, 0
	for _, res := range r.residents {
		if res.PropertyID != propertyID {
			continue
		}
		total++
		if res.IsActive {
			active++
		}
	}
	return active, total, nil
}

type fakeOccupancyRepo struct {
	repositories.OccupancyRepository
	rows     map[uuid.UUID]*models.Occupancy
	assigned []repositories.OccupancyAssignment
}

func newFakeOccupancyRepo(rows ...*models.Occupancy) *fakeOccupancyRepo {
	r := &fakeOccupancyRepo{rows: map[uuid.UUID]*models.Occupancy{}}
	for _, o := range rows {
		r.rows[o.ID] = o
	}
	return r
}

func (r *fakeOccupancyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Occupancy, error) {
	return r.rows[id], nil
}

func (r *fakeOccupancyRepo) GetByBedID(_ context.Context, bedID uuid.UUID) (*models.Occupancy, error) {
	for _, o := range r.rows {
		if o.BedID == bedID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOccupancyRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.Occupancy, error) {
	out := []*models.Occupancy{}
	for _, o := range r.rows {
		if o.PropertyID == propertyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOccupancyRepo) Assign(_ context.Context, a repositories.OccupancyAssignment) (*models.Occupancy, error) {
	for _, o := range r.rows {
		if o.BedID == a.BedID && o.IsOccupied {
			return nil, utils.ErrBedOccupied
		}
	}
	r.assigned = append(r.assigned, a)
	since := a.OccupiedSince
	o := &models.Occupancy{
		ID: uuid.New(), PropertyID: a.PropertyID, FloorID: a.FloorID, RoomID: a.RoomID, BedID: a.BedID,
		ResidentID: &a.ResidentID, IsOccupied: true, OccupiedSince: &since,
	}
	r.rows[o.ID] = o
	return o, nil
}

func (r *fakeOccupancyRepo) Release(_ context.Context, id uuid.UUID, _ *string) (*models.Occupancy, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if !o.IsOccupied {
		return nil, utils.ErrBedNotOccupied
	}
	o.IsOccupied, o.ResidentID, o.OccupiedSince = false, nil, nil
	return o, nil
}

type fakeMoneyRepo struct {
	monthly    []repositories.MonthlyTotal
	sum        float64
	categories []repositories.CategoryTotal
	sumCalls   [][2]time.Time
}

type fakePaymentRepo struct {
	repositories.PaymentRepository
	fakeMoneyRepo
}

func (r *fakePaymentRepo) Sum(_ context.Context, _ *uuid.UUID, from, to time.Time) (float64, error) {
	r.sumCalls = append(r.sumCalls, [2]time.Time{from, to})
	return r.sum, nil
}

func (r *fakePaymentRepo) MonthlyTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]repositories.MonthlyTotal, error) {
	return r.monthly, nil
}

type fakeExpenseRepo struct {
	repositories.ExpenseRepository
	fakeMoneyRepo
}

func (r *fakeExpenseRepo) Sum(_ context.Context, _ *uuid.UUID, from, to time.Time) (float64, error) {
	r.sumCalls = append(r.sumCalls, [2]time.Time{from, to})
	return r.sum, nil
}

func (r *fakeExpenseRepo) MonthlyTotals(context.Context, uuid.UUID, time.Time, time.Time) ([]repositories.MonthlyTotal, error) {
	return r.monthly, nil
}

func (r *fakeExpenseRepo) TotalsByCategory(context.Context, *uuid.UUID, time.Time, time.Time) ([]repositories.CategoryTotal, error) {
	return r.categories, nil
}

type fakeHistoryRepo struct {
	repositories.OccupancyHistoryRepository
	moves    []repositories.MonthlyMoves
	from, to time.Time
}

func (r *fakeHistoryRepo) MonthlyMoves(_ context.Context, _ uuid.UUID, from, to time.Time) ([]repositories.MonthlyMoves, error) {
	r.from, r.to = from, to
	return r.moves, nil
}

type fakeMaintenanceRepo struct {
	repositories.MaintenanceRequestRepository
	open     int
	requests map[uuid.UUID]*models.MaintenanceRequest
}

func (r *fakeMaintenanceRepo) Create(_ context.Context, m *models.MaintenanceRequest) error {
	if r.requests == nil {
		r.requests = map[uuid.UUID]*models.MaintenanceRequest{}
	}
	r.requests[m.ID] = m
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(_ context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return r.requests[id], nil
}

func (r *fakeMaintenanceRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) (*models.MaintenanceRequest, error) {
	m, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if err := mutate(m); err != nil {
		return nil, err
	}
	m.RowVersion++
	return m, nil
}

func (r *fakeMaintenanceRepo) CountOpen(context.Context, uuid.UUID) (int, error) {
	return r.open, nil
}

type fakeUserRepo struct {
	repositories.UserRepository
	users      map[string]*models.User
	lastLogins []uuid.UUID
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.lastLogins = append(r.lastLogins, id)
	return nil
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func monthly(res uuid.UUID, prop uuid.UUID, rent float64, joined models.Date) *models.Resident {
	return &models.Resident{
		ID: res, PropertyID: prop, Name: "Resident " + res.String()[:4], Rent: rent,
		RentType: models.RentTypeMonthly, JoiningDate: joined, IsActive: true,
	}
}
