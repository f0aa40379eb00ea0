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

type ResidentRepository interface {
	Create(ctx context.Context, res *models.Resident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resident, error)
	List(ctx context.Context, params ListParams) ([]*models.Resident, int, error)

	// ListBillable returns active monthly residents without a move-out date,
	// each with the sum of their payments. A nil propertyID spans all properties.
	ListBillable(ctx context.Context, propertyID *uuid.UUID) ([]*models.ResidentLedger, error)
	Counts(ctx context.Context, propertyID uuid.UUID) (active int, total int, err error)

	UpdateIfVersion(ctx context.Context, res *models.Resident, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Resident) error) (*models.Resident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var ResidentListSpec = ListSpec{
	From: "residents",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"is_active":   {Column: "is_active", Kind: FilterBool},
		"rent_type": {Column: "rent_type", Kind: FilterString, Allowed: []string{
			string(models.RentTypeMonthly), string(models.RentTypeDaily),
			string(models.RentTypeWeekly), string(models.RentTypeBiWeekly),
		}},
	},
	Search: []string{"name", "email", "mobile"},
	Ordering: map[string]string{
		"name":         "name",
		"joining_date": "joining_date",
		"rent":         "rent",
		"created_at":   "created_at",
	},
	DefaultOrder: "created_at DESC",
}

type residentRepo struct {
	*BaseVersionedRepo[*models.Resident]
	db DB
}

func NewResidentRepository(db DB) ResidentRepository {
	r := &residentRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectResident()+" WHERE id=$1", scanResident)
	return r
}

func (r *residentRepo) Create(ctx context.Context, res *models.Resident) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO residents (
			id, property_id, name, gender, email, mobile, dob, address, rent, rent_type,
			joining_date, move_out_date, next_pay_date, payment_cycle_start, preferred_billing_day,
			photo_url, aadhar_url, current_floor_id, current_room_id, current_bed_id,
			notes, override_comment, is_active, arrears,
			created_at, updated_at, row_version
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,
			NOW(), NOW(), 1
		)
		RETURNING created_at, updated_at, row_version`,
		res.ID, res.PropertyID, res.Name, res.Gender, res.Email, res.Mobile, dateArg(res.DOB),
		res.Address, res.Rent, string(res.RentType), res.JoiningDate.Time, dateArg(res.MoveOutDate),
		dateArg(res.NextPayDate), dateArg(res.PaymentCycleStart), res.PreferredBillingDay,
		res.PhotoURL, res.AadharURL, uuidArg(res.CurrentFloorID), uuidArg(res.CurrentRoomID),
		uuidArg(res.CurrentBedID), res.Notes, res.OverrideComment, res.IsActive, res.Arrears,
	).Scan(&res.CreatedAt, &res.UpdatedAt, &res.RowVersion)
}

func (r *residentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Resident, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *residentRepo) List(ctx context.Context, params ListParams) ([]*models.Resident, int, error) {
	return runList(ctx, r.db, ResidentListSpec, residentColumns, params, scanResident)
}

func (r *residentRepo) ListBillable(ctx context.Context, propertyID *uuid.UUID) ([]*models.ResidentLedger, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+residentColumns+`,
			COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.resident_id = residents.id), 0)::float8
		FROM residents
		WHERE is_active
		  AND rent_type = 'monthly'
		  AND move_out_date IS NULL
		  AND ($1::uuid IS NULL OR property_id = $1)
		ORDER BY name`,
		uuidArg(propertyID),
	)
	return collect(rows, err, func(row pgx.Row) (*models.ResidentLedger, error) {
		var paid float64
		res, err := scanResidentWith(row, &paid)
		if err != nil {
			return nil, err
		}
		return &models.ResidentLedger{Resident: res, TotalPaid: paid}, nil
	})
}

func (r *residentRepo) Counts(ctx context.Context, propertyID uuid.UUID) (int, int, error) {
	var active, total int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE is_active), COUNT(*)
		FROM residents WHERE property_id=$1`,
		propertyID,
	).Scan(&active, &total)
	return active, total, err
}

func (r *residentRepo) UpdateIfVersion(ctx context.Context, res *models.Resident, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE residents SET
			name=$1, gender=$2, email=$3, mobile=$4, dob=$5, address=$6, rent=$7, rent_type=$8,
			joining_date=$9, move_out_date=$10, next_pay_date=$11, payment_cycle_start=$12,
			preferred_billing_day=$13, photo_url=$14, aadhar_url=$15, notes=$16,
			override_comment=$17, is_active=$18, arrears=$19,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$20 AND row_version=$21`,
		res.Name, res.Gender, res.Email, res.Mobile, dateArg(res.DOB), res.Address, res.Rent,
		string(res.RentType), res.JoiningDate.Time, dateArg(res.MoveOutDate), dateArg(res.NextPayDate),
		dateArg(res.PaymentCycleStart), res.PreferredBillingDay, res.PhotoURL, res.AadharURL,
		res.Notes, res.OverrideComment, res.IsActive, res.Arrears,
		res.ID, expected,
	)
}

func (r *residentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Resident) error) (*models.Resident, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

// Delete refuses residents that still hold a bed. The resident row is locked
// first so a concurrent Assign cannot slip in between check and delete.
func (r *residentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked uuid.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM residents WHERE id=$1 FOR UPDATE`, id).Scan(&locked); err != nil {
			return err
		}
		var bed uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT bed_id FROM occupancies WHERE resident_id=$1 AND is_occupied LIMIT 1`, id,
		).Scan(&bed)
		switch {
		case err == nil:
			return utils.ErrResidentOnBed
		case err != pgx.ErrNoRows:
			return err
		}
		return deleteByID(ctx, tx, "residents", id)
	})
}

const residentColumns = `
	id, property_id, name, gender, email, mobile, dob, address, rent::float8, rent_type,
	joining_date, move_out_date, next_pay_date, payment_cycle_start, preferred_billing_day,
	photo_url, aadhar_url, current_floor_id, current_room_id, current_bed_id,
	notes, override_comment, is_active, arrears::float8, created_at, updated_at, row_version`

func baseSelectResident() string {
	return "SELECT " + residentColumns + " FROM residents"
}

func scanResident(row pgx.Row) (*models.Resident, error) {
	return scanResidentWith(row)
}

// scanResidentWith scans the resident columns followed by any extra destinations.
func scanResidentWith(row pgx.Row, extra ...any) (*models.Resident, error) {
	var (
		res                                   models.Resident
		rentType                              string
		dob, joining, moveOut, nextPay, cycle pgtype.Date
		floorID, roomID, bedID                pgtype.UUID
	)
	dest := []any{
		&res.ID, &res.PropertyID, &res.Name, &res.Gender, &res.Email, &res.Mobile, &dob, &res.Address,
		&res.Rent, &rentType, &joining, &moveOut, &nextPay, &cycle, &res.PreferredBillingDay,
		&res.PhotoURL, &res.AadharURL, &floorID, &roomID, &bedID,
		&res.Notes, &res.OverrideComment, &res.IsActive, &res.Arrears,
		&res.CreatedAt, &res.UpdatedAt, &res.RowVersion,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	res.RentType = models.RentType(rentType)
	res.DOB = datePtr(dob)
	res.JoiningDate = dateValue(joining)
	res.MoveOutDate = datePtr(moveOut)
	res.NextPayDate = datePtr(nextPay)
	res.PaymentCycleStart = datePtr(cycle)
	res.CurrentFloorID = uuidPtr(floorID)
	res.CurrentRoomID = uuidPtr(roomID)
	res.CurrentBedID = uuidPtr(bedID)
	return &res, nil
}
