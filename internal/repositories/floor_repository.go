package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type FloorRepository interface {
	Create(ctx context.Context, f *models.Floor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Floor, error)
	List(ctx context.Context, params ListParams) ([]*models.Floor, int, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Floor, error)
	UpdateIfVersion(ctx context.Context, f *models.Floor, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Floor) error) (*models.Floor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var FloorListSpec = ListSpec{
	From: "floors",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"is_active":   {Column: "is_active", Kind: FilterBool},
		"floor_level": {Column: "floor_level", Kind: FilterInt},
	},
	Search: []string{"floor_name"},
	Ordering: map[string]string{
		"property":    "property_id",
		"floor_level": "floor_level",
		"floor_name":  "floor_name",
		"created_at":  "created_at",
	},
	DefaultOrder: "property_id, floor_level",
}

type floorRepo struct {
	*BaseVersionedRepo[*models.Floor]
	db DB
}

func NewFloorRepository(db DB) FloorRepository {
	r := &floorRepo{db: db}
	selectStmt := baseSelectFloor() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanFloor)
	return r
}

const insertFloorSQL = `
	INSERT INTO floors (
		id, property_id, floor_level, floor_name, description, is_active,
		created_at, updated_at, row_version
	) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW(), 1)`

func floorInsertArgs(f *models.Floor) []any {
	return []any{f.ID, f.PropertyID, f.FloorLevel, f.FloorName, f.Description, f.IsActive}
}

func (r *floorRepo) Create(ctx context.Context, f *models.Floor) error {
	return r.db.QueryRow(ctx, insertFloorSQL+" RETURNING created_at, updated_at, row_version",
		floorInsertArgs(f)...).Scan(&f.CreatedAt, &f.UpdatedAt, &f.RowVersion)
}

func (r *floorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Floor, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *floorRepo) List(ctx context.Context, params ListParams) ([]*models.Floor, int, error) {
	return runList(ctx, r.db, FloorListSpec, floorColumns, params, scanFloor)
}

func (r *floorRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Floor, error) {
	rows, err := r.db.Query(ctx, baseSelectFloor()+" WHERE property_id=$1 ORDER BY floor_level", propertyID)
	return collect(rows, err, scanFloor)
}

func (r *floorRepo) UpdateIfVersion(ctx context.Context, f *models.Floor, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE floors SET
			floor_level=$1, floor_name=$2, description=$3, is_active=$4,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$5 AND row_version=$6`,
		f.FloorLevel, f.FloorName, f.Description, f.IsActive, f.ID, expected,
	)
}

func (r *floorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Floor) error) (*models.Floor, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *floorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "floors", id)
}

const floorColumns = `id, property_id, floor_level, floor_name, description, is_active, created_at, updated_at, row_version`

func baseSelectFloor() string {
	return "SELECT " + floorColumns + " FROM floors"
}

func scanFloor(row pgx.Row) (*models.Floor, error) {
	var f models.Floor
	if err := row.Scan(
		&f.ID, &f.PropertyID, &f.FloorLevel, &f.FloorName, &f.Description, &f.IsActive,
		&f.CreatedAt, &f.UpdatedAt, &f.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
