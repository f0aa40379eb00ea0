package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type RoomRepository interface {
	Create(ctx context.Context, rm *models.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	List(ctx context.Context, params ListParams) ([]*models.Room, int, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Room, error)
	UpdateIfVersion(ctx context.Context, rm *models.Room, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Room) error) (*models.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var RoomListSpec = ListSpec{
	From: "rooms",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"floor_id":    {Column: "floor_id", Kind: FilterUUID},
		"is_active":   {Column: "is_active", Kind: FilterBool},
		"room_type": {Column: "room_type", Kind: FilterString, Allowed: []string{
			string(models.RoomTypeSingle), string(models.RoomTypeDouble),
			string(models.RoomTypeTriple), string(models.RoomTypeDormitory),
		}},
	},
	Search: []string{"room_number", "room_name"},
	Ordering: map[string]string{
		"floor":       "floor_id",
		"room_number": "room_number",
		"total_beds":  "total_beds",
		"created_at":  "created_at",
	},
	DefaultOrder: "floor_id, room_number",
}

type roomRepo struct {
	*BaseVersionedRepo[*models.Room]
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	r := &roomRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectRoom()+" WHERE id=$1", scanRoom)
	return r
}

const insertRoomSQL = `
	INSERT INTO rooms (
		id, floor_id, property_id, room_number, room_name, total_beds, room_type,
		capacity, description, is_active, created_at, updated_at, row_version
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW(), 1)`

func roomInsertArgs(rm *models.Room) []any {
	return []any{
		rm.ID, rm.FloorID, rm.PropertyID, rm.RoomNumber, rm.RoomName, rm.TotalBeds,
		string(rm.RoomType), rm.Capacity, rm.Description, rm.IsActive,
	}
}

func (r *roomRepo) Create(ctx context.Context, rm *models.Room) error {
	return r.db.QueryRow(ctx, insertRoomSQL+" RETURNING created_at, updated_at, row_version",
		roomInsertArgs(rm)...).Scan(&rm.CreatedAt, &rm.UpdatedAt, &rm.RowVersion)
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *roomRepo) List(ctx context.Context, params ListParams) ([]*models.Room, int, error) {
	return runList(ctx, r.db, RoomListSpec, roomColumns, params, scanRoom)
}

func (r *roomRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, baseSelectRoom()+" WHERE property_id=$1 ORDER BY room_number", propertyID)
	return collect(rows, err, scanRoom)
}

func (r *roomRepo) UpdateIfVersion(ctx context.Context, rm *models.Room, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE rooms SET
			floor_id=$1, room_number=$2, room_name=$3, total_beds=$4, room_type=$5,
			capacity=$6, description=$7, is_active=$8,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$9 AND row_version=$10`,
		rm.FloorID, rm.RoomNumber, rm.RoomName, rm.TotalBeds, string(rm.RoomType),
		rm.Capacity, rm.Description, rm.IsActive, rm.ID, expected,
	)
}

func (r *roomRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Room) error) (*models.Room, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "rooms", id)
}

const roomColumns = `
	id, floor_id, property_id, room_number, room_name, total_beds, room_type,
	capacity, description, is_active, created_at, updated_at, row_version`

func baseSelectRoom() string {
	return "SELECT " + roomColumns + " FROM rooms"
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	var (
		rm       models.Room
		roomType string
	)
	if err := row.Scan(
		&rm.ID, &rm.FloorID, &rm.PropertyID, &rm.RoomNumber, &rm.RoomName, &rm.TotalBeds, &roomType,
		&rm.Capacity, &rm.Description, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt, &rm.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rm.RoomType = models.RoomType(roomType)
	return &rm, nil
}
