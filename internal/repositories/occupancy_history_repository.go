package repositories

import (
	"context"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// MonthlyMoves counts move-ins and move-outs for one "YYYY-MM" month.
type MonthlyMoves struct {
	Month    string
	MoveIns  int
	MoveOuts int
}

// OccupancyHistoryRepository is read-mostly: rows are only appended, either
// here or by the occupancy transactions.
type OccupancyHistoryRepository interface {
	Create(ctx context.Context, h *models.OccupancyHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OccupancyHistory, error)
	List(ctx context.Context, params ListParams) ([]*models.OccupancyHistory, int, error)
	MonthlyMoves(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyMoves, error)
}

var OccupancyHistoryListSpec = ListSpec{
	From: `(
		SELECT h.*, r.name AS resident_name
		FROM occupancy_history h
		LEFT JOIN residents r ON r.id = h.resident_id
	) AS occupancy_history`,
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"resident_id": {Column: "resident_id", Kind: FilterUUID},
		"bed_id":      {Column: "bed_id", Kind: FilterUUID},
		"action": {Column: "action", Kind: FilterString, Allowed: []string{
			string(models.OccupancyActionOccupied), string(models.OccupancyActionFreed),
		}},
	},
	Search: []string{"resident_name", "notes"},
	Ordering: map[string]string{
		"action_date": "action_date",
		"created_at":  "created_at",
	},
	DefaultOrder: "action_date DESC",
}

type occupancyHistoryRepo struct {
	db DB
}

func NewOccupancyHistoryRepository(db DB) OccupancyHistoryRepository {
	return &occupancyHistoryRepo{db: db}
}

func (r *occupancyHistoryRepo) Create(ctx context.Context, h *models.OccupancyHistory) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO occupancy_history (
			id, property_id, floor_id, room_id, bed_id, resident_id, action, action_date, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW())
		RETURNING created_at`,
		h.ID, h.PropertyID, h.FloorID, h.RoomID, h.BedID, h.ResidentID,
		string(h.Action), h.ActionDate, h.Notes,
	).Scan(&h.CreatedAt)
}

func insertHistory(
	ctx context.Context,
	tx pgx.Tx,
	propertyID, floorID, roomID, bedID, residentID uuid.UUID,
	action models.OccupancyAction,
	notes *string,
) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO occupancy_history (
			id, property_id, floor_id, room_id, bed_id, resident_id, action, action_date, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), $8, NOW())`,
		uuid.New(), propertyID, floorID, roomID, bedID, residentID, string(action), notes,
	)
	return err
}

func (r *occupancyHistoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OccupancyHistory, error) {
	return scanOccupancyHistory(r.db.QueryRow(ctx,
		"SELECT "+historyColumns+" FROM "+OccupancyHistoryListSpec.From+" WHERE id=$1", id))
}

func (r *occupancyHistoryRepo) List(ctx context.Context, params ListParams) ([]*models.OccupancyHistory, int, error) {
	return runList(ctx, r.db, OccupancyHistoryListSpec, historyColumns, params, scanOccupancyHistory)
}

// MonthlyMoves buckets history rows in [from, to) by calendar month.
func (r *occupancyHistoryRepo) MonthlyMoves(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyMoves, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', action_date), 'YYYY-MM') AS month,
			COUNT(*) FILTER (WHERE action = 'occupied'),
			COUNT(*) FILTER (WHERE action = 'freed')
		FROM occupancy_history
		WHERE property_id=$1 AND action_date >= $2 AND action_date < $3
		GROUP BY month
		ORDER BY month`,
		propertyID, from, to,
	)
	return collect(rows, err, func(row pgx.Row) (MonthlyMoves, error) {
		var m MonthlyMoves
		err := row.Scan(&m.Month, &m.MoveIns, &m.MoveOuts)
		return m, err
	})
}

const historyColumns = `
	id, property_id, floor_id, room_id, bed_id, resident_id, resident_name,
	action, action_date, notes, created_at`

func scanOccupancyHistory(row pgx.Row) (*models.OccupancyHistory, error) {
	var (
		h      models.OccupancyHistory
		action string
	)
	if err := row.Scan(
		&h.ID, &h.PropertyID, &h.FloorID, &h.RoomID, &h.BedID, &h.ResidentID, &h.ResidentName,
		&action, &h.ActionDate, &h.Notes, &h.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	h.Action = models.OccupancyAction(action)
	return &h, nil
}
