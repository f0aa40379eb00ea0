package repositories

import (
	"context"
	"fmt"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	CreateWithLayout(ctx context.Context, p *models.Property, layout *models.PropertyLayout) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context, params ListParams) ([]*models.Property, int, error)

	UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) (*models.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var PropertyListSpec = ListSpec{
	From: "properties",
	Filters: map[string]Filter{
		"id":        {Column: "id", Kind: FilterUUID},
		"is_active": {Column: "is_active", Kind: FilterBool},
	},
	Search: []string{"name", "city", "state"},
	Ordering: map[string]string{
		"name":       "name",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	DefaultOrder: "created_at DESC",
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	*BaseVersionedRepo[*models.Property]
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	r := &propertyRepo{db: db}
	selectStmt := "SELECT " + propertyColumns + " FROM properties WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanProperty)
	return r
}

const insertPropertySQL = `
	INSERT INTO properties (
		id, name, address, city, state, zip_code, latitude, longitude, time_zone,
		floors_count, rooms_per_floor, beds_per_room, description, is_active,
		created_at, updated_at, row_version
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, NOW(), NOW(), 1)
	RETURNING created_at, updated_at, row_version`

func propertyInsertArgs(p *models.Property) []any {
	return []any{
		p.ID, p.Name, p.Address, p.City, p.State, p.ZipCode,
		p.Latitude, p.Longitude, p.TimeZone,
		p.FloorsCount, p.RoomsPerFloor, p.BedsPerRoom, p.Description, p.IsActive,
	}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.db.QueryRow(ctx, insertPropertySQL, propertyInsertArgs(p)...).
		Scan(&p.CreatedAt, &p.UpdatedAt, &p.RowVersion)
}

// CreateWithLayout inserts the property and its whole floor/room/bed tree atomically.
func (r *propertyRepo) CreateWithLayout(ctx context.Context, p *models.Property, layout *models.PropertyLayout) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertPropertySQL, propertyInsertArgs(p)...).
			Scan(&p.CreatedAt, &p.UpdatedAt, &p.RowVersion); err != nil {
			return err
		}
		if layout == nil {
			return nil
		}

		batch := &pgx.Batch{}
		for _, f := range layout.Floors {
			batch.Queue(insertFloorSQL, floorInsertArgs(f)...)
		}
		for _, rm := range layout.Rooms {
			batch.Queue(insertRoomSQL, roomInsertArgs(rm)...)
		}
		for _, b := range layout.Beds {
			batch.Queue(insertBedSQL, bedInsertArgs(b)...)
		}

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("provisioning layout (statement %d): %w", i, err)
			}
		}
		return results.Close()
	})
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *propertyRepo) List(ctx context.Context, params ListParams) ([]*models.Property, int, error) {
	return runList(ctx, r.db, PropertyListSpec, propertyColumns, params, scanProperty)
}

func (r *propertyRepo) UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE properties SET
			name=$1, address=$2, city=$3, state=$4, zip_code=$5,
			latitude=$6, longitude=$7, time_zone=$8,
			floors_count=$9, rooms_per_floor=$10, beds_per_room=$11,
			description=$12, is_active=$13,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$14 AND row_version=$15`,
		p.Name, p.Address, p.City, p.State, p.ZipCode,
		p.Latitude, p.Longitude, p.TimeZone,
		p.FloorsCount, p.RoomsPerFloor, p.BedsPerRoom,
		p.Description, p.IsActive,
		p.ID, expected,
	)
}

func (r *propertyRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) (*models.Property, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "properties", id)
}

const propertyColumns = `
	id, name, address, city, state, zip_code, latitude, longitude, time_zone,
	floors_count, rooms_per_floor, beds_per_room, description, is_active,
	created_at, updated_at, row_version`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.Latitude, &p.Longitude, &p.TimeZone,
		&p.FloorsCount, &p.RoomsPerFloor, &p.BedsPerRoom, &p.Description, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt, &p.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// deleteByID hard-deletes one row and reports pgx.ErrNoRows when nothing matched.
func deleteByID(ctx context.Context, db DB, table string, id uuid.UUID) error {
	tag, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
