package repositories

import (
	"context"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, params ListParams) ([]*models.Payment, int, error)

	// Sum totals payments dated in [from, to). Zero times leave that side open.
	Sum(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) (float64, error)
	MonthlyTotals(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyTotal, error)
	ResidentTotal(ctx context.Context, residentID uuid.UUID) (total float64, count int, err error)

	UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) (*models.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var PaymentListSpec = ListSpec{
	From: "payments",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"resident_id": {Column: "resident_id", Kind: FilterUUID},
		"payment_method": {Column: "payment_method", Kind: FilterString, Allowed: []string{
			string(models.PaymentMethodCash), string(models.PaymentMethodBankTransfer),
			string(models.PaymentMethodUPI), string(models.PaymentMethodCard),
		}},
	},
	Search: []string{"resident_name", "reference_number"},
	Ordering: map[string]string{
		"payment_date": "payment_date",
		"amount":       "amount",
		"created_at":   "created_at",
	},
	DefaultOrder: "payment_date DESC",
}

type paymentRepo struct {
	*BaseVersionedRepo[*models.Payment]
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	r := &paymentRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, "SELECT "+paymentColumns+" FROM payments WHERE id=$1", scanPayment)
	return r
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO payments (
			id, property_id, resident_id, resident_name, amount, payment_date,
			payment_method, reference_number, notes, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
		RETURNING created_at, updated_at, row_version`,
		p.ID, p.PropertyID, p.ResidentID, p.ResidentName, p.Amount, p.PaymentDate.Time,
		string(p.PaymentMethod), p.ReferenceNumber, p.Notes,
	).Scan(&p.CreatedAt, &p.UpdatedAt, &p.RowVersion)
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *paymentRepo) List(ctx context.Context, params ListParams) ([]*models.Payment, int, error) {
	return runList(ctx, r.db, PaymentListSpec, paymentColumns, params, scanPayment)
}

func (r *paymentRepo) Sum(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::float8 FROM payments
		WHERE ($1::uuid IS NULL OR property_id = $1)
		  AND ($2::date IS NULL OR payment_date >= $2)
		  AND ($3::date IS NULL OR payment_date < $3)`,
		uuidArg(propertyID), optionalDate(from), optionalDate(to),
	).Scan(&total)
	return total, err
}

func (r *paymentRepo) MonthlyTotals(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', payment_date), 'YYYY-MM') AS month, SUM(amount)::float8
		FROM payments
		WHERE property_id=$1 AND payment_date >= $2 AND payment_date < $3
		GROUP BY month
		ORDER BY month`,
		propertyID, from, to,
	)
	return collect(rows, err, scanMonthlyTotal)
}

func (r *paymentRepo) ResidentTotal(ctx context.Context, residentID uuid.UUID) (float64, int, error) {
	var (
		total float64
		count int
	)
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::float8, COUNT(*)
		FROM payments WHERE resident_id=$1`,
		residentID,
	).Scan(&total, &count)
	return total, count, err
}

func (r *paymentRepo) UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE payments SET
			resident_name=$1, amount=$2, payment_date=$3, payment_method=$4,
			reference_number=$5, notes=$6,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$7 AND row_version=$8`,
		p.ResidentName, p.Amount, p.PaymentDate.Time, string(p.PaymentMethod),
		p.ReferenceNumber, p.Notes, p.ID, expected,
	)
}

func (r *paymentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) (*models.Payment, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "payments", id)
}

const paymentColumns = `
	id, property_id, resident_id, resident_name, amount::float8, payment_date,
	payment_method, reference_number, notes, created_at, updated_at, row_version`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var (
		p      models.Payment
		date   pgtype.Date
		method string
	)
	if err := row.Scan(
		&p.ID, &p.PropertyID, &p.ResidentID, &p.ResidentName, &p.Amount, &date,
		&method, &p.ReferenceNumber, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.PaymentDate = dateValue(date)
	p.PaymentMethod = models.PaymentMethod(method)
	return &p, nil
}
