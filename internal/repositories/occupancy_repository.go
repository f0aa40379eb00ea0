package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// OccupancyAssignment places one resident on one bed.
type OccupancyAssignment struct {
	PropertyID    uuid.UUID
	FloorID       uuid.UUID
	RoomID        uuid.UUID
	BedID         uuid.UUID
	ResidentID    uuid.UUID
	OccupiedSince models.Date
	Notes         *string
}

type OccupancyRepository interface {
	Create(ctx context.Context, o *models.Occupancy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Occupancy, error)
	GetByBedID(ctx context.Context, bedID uuid.UUID) (*models.Occupancy, error)
	List(ctx context.Context, params ListParams) ([]*models.Occupancy, int, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Occupancy, error)

	UpdateIfVersion(ctx context.Context, o *models.Occupancy, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Occupancy) error) (*models.Occupancy, error)

	// Assign marks the bed occupied, appends an "occupied" history row and
	// points the resident at the bed, all in one transaction.
	Assign(ctx context.Context, a OccupancyAssignment) (*models.Occupancy, error)
	// Release frees the bed, appends a "freed" history row and clears the
	// resident's current placement.
	Release(ctx context.Context, id uuid.UUID, notes *string) (*models.Occupancy, error)
	// Delete removes the row, releasing it first when it is occupied.
	Delete(ctx context.Context, id uuid.UUID) error
}

var OccupancyListSpec = ListSpec{
	From: `(
		SELECT o.*, r.name AS resident_name
		FROM occupancies o
		LEFT JOIN residents r ON r.id = o.resident_id
	) AS occupancies`,
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"floor_id":    {Column: "floor_id", Kind: FilterUUID},
		"room_id":     {Column: "room_id", Kind: FilterUUID},
		"bed_id":      {Column: "bed_id", Kind: FilterUUID},
		"resident_id": {Column: "resident_id", Kind: FilterUUID},
		"is_occupied": {Column: "is_occupied", Kind: FilterBool},
	},
	Search: []string{"resident_name"},
	Ordering: map[string]string{
		"property":       "property_id",
		"floor":          "floor_id",
		"room":           "room_id",
		"bed":            "bed_id",
		"occupied_since": "occupied_since",
		"updated_at":     "updated_at",
	},
	DefaultOrder: "property_id, floor_id, room_id, bed_id",
}

type occupancyRepo struct {
	*BaseVersionedRepo[*models.Occupancy]
	db DB
}

func NewOccupancyRepository(db DB) OccupancyRepository {
	r := &occupancyRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectOccupancy()+" WHERE id=$1", scanOccupancy)
	return r
}

func (r *occupancyRepo) Create(ctx context.Context, o *models.Occupancy) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO occupancies (
			id, property_id, floor_id, room_id, bed_id, resident_id, is_occupied, occupied_since,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW(), 1)
		RETURNING created_at, updated_at, row_version`,
		o.ID, o.PropertyID, o.FloorID, o.RoomID, o.BedID, uuidArg(o.ResidentID),
		o.IsOccupied, dateArg(o.OccupiedSince),
	).Scan(&o.CreatedAt, &o.UpdatedAt, &o.RowVersion)
	if IsUniqueViolation(err, "") {
		return utils.ErrBedOccupied
	}
	return err
}

func (r *occupancyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Occupancy, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *occupancyRepo) GetByBedID(ctx context.Context, bedID uuid.UUID) (*models.Occupancy, error) {
	return scanOccupancy(r.db.QueryRow(ctx, baseSelectOccupancy()+" WHERE bed_id=$1", bedID))
}

func (r *occupancyRepo) List(ctx context.Context, params ListParams) ([]*models.Occupancy, int, error) {
	return runList(ctx, r.db, OccupancyListSpec, occupancyColumns, params, scanOccupancy)
}

func (r *occupancyRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Occupancy, error) {
	rows, err := r.db.Query(ctx, baseSelectOccupancy()+" WHERE property_id=$1", propertyID)
	return collect(rows, err, scanOccupancy)
}

func (r *occupancyRepo) UpdateIfVersion(ctx context.Context, o *models.Occupancy, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE occupancies SET
			occupied_since=$1, updated_at=NOW(), row_version=row_version+1
		WHERE id=$2 AND row_version=$3`,
		dateArg(o.OccupiedSince), o.ID, expected,
	)
}

func (r *occupancyRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Occupancy) error) (*models.Occupancy, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *occupancyRepo) Assign(ctx context.Context, a OccupancyAssignment) (*models.Occupancy, error) {
	var out *models.Occupancy
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var currentBed pgtype.UUID
		if err := tx.QueryRow(ctx,
			`SELECT current_bed_id FROM residents WHERE id=$1 FOR UPDATE`, a.ResidentID,
		).Scan(&currentBed); err != nil {
			return err
		}
		if bed := uuidPtr(currentBed); bed != nil && *bed != a.BedID {
			var occupied bool
			err := tx.QueryRow(ctx,
				`SELECT is_occupied FROM occupancies WHERE bed_id=$1 AND resident_id=$2`, *bed, a.ResidentID,
			).Scan(&occupied)
			if err != nil && err != pgx.ErrNoRows {
				return err
			}
			if occupied {
				return utils.ErrResidentAssigned
			}
		}

		// The conditional upsert only touches a free row, so a concurrent
		// assignment of the same bed comes back with no row.
		var id uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO occupancies (
				id, property_id, floor_id, room_id, bed_id, resident_id, is_occupied, occupied_since,
				created_at, updated_at, row_version
			) VALUES ($1,$2,$3,$4,$5,$6, TRUE, $7, NOW(), NOW(), 1)
			ON CONFLICT (bed_id) DO UPDATE SET
				resident_id=EXCLUDED.resident_id,
				floor_id=EXCLUDED.floor_id,
				room_id=EXCLUDED.room_id,
				is_occupied=TRUE,
				occupied_since=EXCLUDED.occupied_since,
				updated_at=NOW(),
				row_version=occupancies.row_version+1
			WHERE NOT occupancies.is_occupied
			RETURNING id`,
			uuid.New(), a.PropertyID, a.FloorID, a.RoomID, a.BedID, a.ResidentID, a.OccupiedSince.Time,
		).Scan(&id)
		if err == pgx.ErrNoRows || IsUniqueViolation(err, "") {
			return utils.ErrBedOccupied
		}
		if err != nil {
			return err
		}

		if err := insertHistory(ctx, tx, a.PropertyID, a.FloorID, a.RoomID, a.BedID, a.ResidentID,
			models.OccupancyActionOccupied, a.Notes); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE residents SET
				current_floor_id=$1, current_room_id=$2, current_bed_id=$3,
				updated_at=NOW(), row_version=row_version+1
			WHERE id=$4`,
			a.FloorID, a.RoomID, a.BedID, a.ResidentID,
		); err != nil {
			return err
		}

		out, err = scanOccupancy(tx.QueryRow(ctx, baseSelectOccupancy()+" WHERE id=$1", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *occupancyRepo) Release(ctx context.Context, id uuid.UUID, notes *string) (*models.Occupancy, error) {
	var out *models.Occupancy
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		o, err := lockOccupancy(ctx, tx, id)
		if err != nil {
			return err
		}
		if !o.IsOccupied || o.ResidentID == nil {
			return utils.ErrBedNotOccupied
		}
		if err := freeOccupancy(ctx, tx, o, notes); err != nil {
			return err
		}
		out, err = scanOccupancy(tx.QueryRow(ctx, baseSelectOccupancy()+" WHERE id=$1", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *occupancyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		o, err := lockOccupancy(ctx, tx, id)
		if err != nil {
			return err
		}
		if o.IsOccupied && o.ResidentID != nil {
			if err := freeOccupancy(ctx, tx, o, nil); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx, `DELETE FROM occupancies WHERE id=$1`, id)
		return err
	})
}

func lockOccupancy(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Occupancy, error) {
	var (
		o          models.Occupancy
		residentID pgtype.UUID
	)
	err := tx.QueryRow(ctx, `
		SELECT id, property_id, floor_id, room_id, bed_id, resident_id, is_occupied
		FROM occupancies WHERE id=$1 FOR UPDATE`, id,
	).Scan(&o.ID, &o.PropertyID, &o.FloorID, &o.RoomID, &o.BedID, &residentID, &o.IsOccupied)
	if err != nil {
		return nil, err
	}
	o.ResidentID = uuidPtr(residentID)
	return &o, nil
}

func freeOccupancy(ctx context.Context, tx pgx.Tx, o *models.Occupancy, notes *string) error {
	if _, err := tx.Exec(ctx, `
		UPDATE occupancies SET
			is_occupied=FALSE, resident_id=NULL, occupied_since=NULL,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$1`, o.ID,
	); err != nil {
		return err
	}
	if err := insertHistory(ctx, tx, o.PropertyID, o.FloorID, o.RoomID, o.BedID, *o.ResidentID,
		models.OccupancyActionFreed, notes); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		UPDATE residents SET
			current_floor_id=NULL, current_room_id=NULL, current_bed_id=NULL,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$1 AND current_bed_id=$2`,
		*o.ResidentID, o.BedID,
	)
	return err
}

const occupancyColumns = `
	id, property_id, floor_id, room_id, bed_id, resident_id, resident_name,
	is_occupied, occupied_since, created_at, updated_at, row_version`

func baseSelectOccupancy() string {
	return "SELECT " + occupancyColumns + " FROM " + OccupancyListSpec.From
}

func scanOccupancy(row pgx.Row) (*models.Occupancy, error) {
	var (
		o          models.Occupancy
		residentID pgtype.UUID
		since      pgtype.Date
	)
	if err := row.Scan(
		&o.ID, &o.PropertyID, &o.FloorID, &o.RoomID, &o.BedID, &residentID, &o.ResidentName,
		&o.IsOccupied, &since, &o.CreatedAt, &o.UpdatedAt, &o.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	o.ResidentID = uuidPtr(residentID)
	o.OccupiedSince = datePtr(since)
	return &o, nil
}
