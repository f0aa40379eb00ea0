package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type BedRepository interface {
	Create(ctx context.Context, b *models.Bed) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bed, error)
	List(ctx context.Context, params ListParams) ([]*models.Bed, int, error)
	ListAvailable(ctx context.Context, params ListParams) ([]*models.Bed, int, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Bed, error)
	UpdateIfVersion(ctx context.Context, b *models.Bed, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Bed) error) (*models.Bed, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var BedListSpec = ListSpec{
	From: "beds",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"floor_id":    {Column: "floor_id", Kind: FilterUUID},
		"room_id":     {Column: "room_id", Kind: FilterUUID},
		"is_active":   {Column: "is_active", Kind: FilterBool},
	},
	Search: []string{"bed_number", "bed_name"},
	Ordering: map[string]string{
		"room":       "room_id",
		"bed_number": "bed_number",
		"created_at": "created_at",
	},
	DefaultOrder: "room_id, bed_number",
}

// AvailableBedListSpec lists active beds with no occupancy row or an unoccupied one.
var AvailableBedListSpec = func() ListSpec {
	s := BedListSpec
	s.From = `(
		SELECT b.* FROM beds b
		LEFT JOIN occupancies o ON o.bed_id = b.id
		WHERE b.is_active AND (o.id IS NULL OR NOT o.is_occupied)
	) AS beds`
	return s
}()

type bedRepo struct {
	*BaseVersionedRepo[*models.Bed]
	db DB
}

func NewBedRepository(db DB) BedRepository {
	r := &bedRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectBed()+" WHERE id=$1", scanBed)
	return r
}

const insertBedSQL = `
	INSERT INTO beds (
		id, room_id, floor_id, property_id, bed_number, bed_name, is_active,
		created_at, updated_at, row_version
	) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)`

func bedInsertArgs(b *models.Bed) []any {
	return []any{b.ID, b.RoomID, b.FloorID, b.PropertyID, b.BedNumber, b.BedName, b.IsActive}
}

func (r *bedRepo) Create(ctx context.Context, b *models.Bed) error {
	return r.db.QueryRow(ctx, insertBedSQL+" RETURNING created_at, updated_at, row_version",
		bedInsertArgs(b)...).Scan(&b.CreatedAt, &b.UpdatedAt, &b.RowVersion)
}

func (r *bedRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Bed, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *bedRepo) List(ctx context.Context, params ListParams) ([]*models.Bed, int, error) {
	return runList(ctx, r.db, BedListSpec, bedColumns, params, scanBed)
}

func (r *bedRepo) ListAvailable(ctx context.Context, params ListParams) ([]*models.Bed, int, error) {
	return runList(ctx, r.db, AvailableBedListSpec, bedColumns, params, scanBed)
}

func (r *bedRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Bed, error) {
	rows, err := r.db.Query(ctx, baseSelectBed()+" WHERE property_id=$1 ORDER BY bed_number", propertyID)
	return collect(rows, err, scanBed)
}

func (r *bedRepo) UpdateIfVersion(ctx context.Context, b *models.Bed, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE beds SET
			room_id=$1, floor_id=$2, bed_number=$3, bed_name=$4, is_active=$5,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$6 AND row_version=$7`,
		b.RoomID, b.FloorID, b.BedNumber, b.BedName, b.IsActive, b.ID, expected,
	)
}

func (r *bedRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Bed) error) (*models.Bed, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *bedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "beds", id)
}

const bedColumns = `id, room_id, floor_id, property_id, bed_number, bed_name, is_active, created_at, updated_at, row_version`

func baseSelectBed() string {
	return "SELECT " + bedColumns + " FROM beds"
}

func scanBed(row pgx.Row) (*models.Bed, error) {
	var b models.Bed
	if err := row.Scan(
		&b.ID, &b.RoomID, &b.FloorID, &b.PropertyID, &b.BedNumber, &b.BedName, &b.IsActive,
		&b.CreatedAt, &b.UpdatedAt, &b.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
