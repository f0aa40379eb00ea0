package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// PriorityCount is the number of requests at one priority.
type PriorityCount struct {
	Priority models.MaintenancePriority `json:"priority"`
	Count    int                        `json:"count"`
}

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	List(ctx context.Context, params ListParams) ([]*models.MaintenanceRequest, int, error)
	// ListOpen pages requests that are open or in progress.
	ListOpen(ctx context.Context, params ListParams) ([]*models.MaintenanceRequest, int, error)
	CountByPriority(ctx context.Context, propertyID *uuid.UUID) ([]PriorityCount, error)
	// CountOpen counts requests that are open or in progress.
	CountOpen(ctx context.Context, propertyID uuid.UUID) (int, error)
	UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) (*models.MaintenanceRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var MaintenanceRequestListSpec = ListSpec{
	From: "maintenance_requests",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"resident_id": {Column: "resident_id", Kind: FilterUUID},
		"room_id":     {Column: "room_id", Kind: FilterUUID},
		"category":    {Column: "category", Kind: FilterString},
		"priority": {Column: "priority", Kind: FilterString, Allowed: []string{
			string(models.PriorityLow), string(models.PriorityMedium),
			string(models.PriorityHigh), string(models.PriorityUrgent),
		}},
		"status": {Column: "status", Kind: FilterString, Allowed: []string{
			string(models.MaintenanceStatusOpen), string(models.MaintenanceStatusInProgress),
			string(models.MaintenanceStatusResolved), string(models.MaintenanceStatusClosed),
		}},
	},
	Search: []string{"category", "description"},
	Ordering: map[string]string{
		"reported_date": "reported_date",
		"resolved_date": "resolved_date",
		"priority":      "priority",
		"status":        "status",
	},
	DefaultOrder: "reported_date DESC",
}

// OpenMaintenanceRequestListSpec restricts listing to open and in-progress requests.
var OpenMaintenanceRequestListSpec = func() ListSpec {
	s := MaintenanceRequestListSpec
	s.From = `(
		SELECT * FROM maintenance_requests WHERE status IN ('open', 'in_progress')
	) AS maintenance_requests`
	return s
}()

type maintenanceRequestRepo struct {
	*BaseVersionedRepo[*models.MaintenanceRequest]
	db DB
}

func NewMaintenanceRequestRepository(db DB) MaintenanceRequestRepository {
	r := &maintenanceRequestRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db,
		"SELECT "+maintenanceColumns+" FROM maintenance_requests WHERE id=$1", scanMaintenanceRequest)
	return r
}

func (r *maintenanceRequestRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO maintenance_requests (
			id, property_id, resident_id, room_id, category, description, priority, status,
			reported_date, resolved_date, estimated_cost, actual_cost, notes,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), $9,$10,$11,$12, NOW(), NOW(), 1)
		RETURNING reported_date, created_at, updated_at, row_version`,
		m.ID, m.PropertyID, uuidArg(m.ResidentID), uuidArg(m.RoomID), m.Category, m.Description,
		string(m.Priority), string(m.Status), timeArg(m.ResolvedDate),
		m.EstimatedCost, m.ActualCost, m.Notes,
	).Scan(&m.ReportedDate, &m.CreatedAt, &m.UpdatedAt, &m.RowVersion)
}

func (r *maintenanceRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *maintenanceRequestRepo) List(ctx context.Context, params ListParams) ([]*models.MaintenanceRequest, int, error) {
	return runList(ctx, r.db, MaintenanceRequestListSpec, maintenanceColumns, params, scanMaintenanceRequest)
}

func (r *maintenanceRequestRepo) ListOpen(ctx context.Context, params ListParams) ([]*models.MaintenanceRequest, int, error) {
	return runList(ctx, r.db, OpenMaintenanceRequestListSpec, maintenanceColumns, params, scanMaintenanceRequest)
}

func (r *maintenanceRequestRepo) CountByPriority(ctx context.Context, propertyID *uuid.UUID) ([]PriorityCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT priority, COUNT(*)
		FROM maintenance_requests
		WHERE ($1::uuid IS NULL OR property_id = $1)
		GROUP BY priority
		ORDER BY CASE priority
			WHEN 'urgent' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 ELSE 4 END`,
		uuidArg(propertyID),
	)
	return collect(rows, err, func(row pgx.Row) (PriorityCount, error) {
		var (
			pc       PriorityCount
			priority string
		)
		err := row.Scan(&priority, &pc.Count)
		pc.Priority = models.MaintenancePriority(priority)
		return pc, err
	})
}

func (r *maintenanceRequestRepo) CountOpen(ctx context.Context, propertyID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM maintenance_requests
		WHERE property_id=$1 AND status IN ('open', 'in_progress')`,
		propertyID,
	).Scan(&n)
	return n, err
}

func (r *maintenanceRequestRepo) UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE maintenance_requests SET
			resident_id=$1, room_id=$2, category=$3, description=$4, priority=$5, status=$6,
			resolved_date=$7, estimated_cost=$8, actual_cost=$9, notes=$10,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$11 AND row_version=$12`,
		uuidArg(m.ResidentID), uuidArg(m.RoomID), m.Category, m.Description,
		string(m.Priority), string(m.Status), timeArg(m.ResolvedDate),
		m.EstimatedCost, m.ActualCost, m.Notes, m.ID, expected,
	)
}

func (r *maintenanceRequestRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) (*models.MaintenanceRequest, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *maintenanceRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "maintenance_requests", id)
}

const maintenanceColumns = `
	id, property_id, resident_id, room_id, category, description, priority, status,
	reported_date, resolved_date, estimated_cost::float8, actual_cost::float8, notes,
	created_at, updated_at, row_version`

func scanMaintenanceRequest(row pgx.Row) (*models.MaintenanceRequest, error) {
	var (
		m                  models.MaintenanceRequest
		residentID, roomID pgtype.UUID
		priority, status   string
		resolved           pgtype.Timestamptz
	)
	if err := row.Scan(
		&m.ID, &m.PropertyID, &residentID, &roomID, &m.Category, &m.Description, &priority, &status,
		&m.ReportedDate, &resolved, &m.EstimatedCost, &m.ActualCost, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt, &m.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	m.ResidentID = uuidPtr(residentID)
	m.RoomID = uuidPtr(roomID)
	m.Priority = models.MaintenancePriority(priority)
	m.Status = models.MaintenanceStatus(status)
	m.ResolvedDate = timePtr(resolved)
	return &m, nil
}
