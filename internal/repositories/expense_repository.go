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

// MonthlyTotal is the sum of amounts for one "YYYY-MM" month.
type MonthlyTotal struct {
	Month string
	Total float64
}

// CategoryTotal is the sum and count of expenses in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, params ListParams) ([]*models.Expense, int, error)

	// Sum totals expenses dated in [from, to). Zero times leave that side open.
	Sum(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) (float64, error)
	MonthlyTotals(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyTotal, error)
	// TotalsByCategory ranks categories by total descending, then by name.
	TotalsByCategory(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) ([]CategoryTotal, error)

	UpdateIfVersion(ctx context.Context, e *models.Expense, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Expense) error) (*models.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var ExpenseListSpec = ListSpec{
	From: "expenses",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"category":    {Column: "category", Kind: FilterString},
		"payment_method": {Column: "payment_method", Kind: FilterString, Allowed: []string{
			string(models.PaymentMethodCash), string(models.PaymentMethodBankTransfer),
			string(models.PaymentMethodUPI), string(models.PaymentMethodCard),
		}},
	},
	Search: []string{"category", "description", "paid_by"},
	Ordering: map[string]string{
		"expense_date": "expense_date",
		"amount":       "amount",
		"category":     "category",
		"created_at":   "created_at",
	},
	DefaultOrder: "expense_date DESC",
}

type expenseRepo struct {
	*BaseVersionedRepo[*models.Expense]
	db DB
}

func NewExpenseRepository(db DB) ExpenseRepository {
	r := &expenseRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, "SELECT "+expenseColumns+" FROM expenses WHERE id=$1", scanExpense)
	return r
}

func (r *expenseRepo) Create(ctx context.Context, e *models.Expense) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO expenses (
			id, property_id, amount, category, description, expense_date, paid_by,
			payment_method, receipt_url, notes, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW(), 1)
		RETURNING created_at, updated_at, row_version`,
		e.ID, e.PropertyID, e.Amount, e.Category, e.Description, e.ExpenseDate.Time, e.PaidBy,
		string(e.PaymentMethod), e.ReceiptURL, e.Notes,
	).Scan(&e.CreatedAt, &e.UpdatedAt, &e.RowVersion)
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *expenseRepo) List(ctx context.Context, params ListParams) ([]*models.Expense, int, error) {
	return runList(ctx, r.db, ExpenseListSpec, expenseColumns, params, scanExpense)
}

func (r *expenseRepo) Sum(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::float8 FROM expenses
		WHERE ($1::uuid IS NULL OR property_id = $1)
		  AND ($2::date IS NULL OR expense_date >= $2)
		  AND ($3::date IS NULL OR expense_date < $3)`,
		uuidArg(propertyID), optionalDate(from), optionalDate(to),
	).Scan(&total)
	return total, err
}

func (r *expenseRepo) MonthlyTotals(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]MonthlyTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', expense_date), 'YYYY-MM') AS month, SUM(amount)::float8
		FROM expenses
		WHERE property_id=$1 AND expense_date >= $2 AND expense_date < $3
		GROUP BY month
		ORDER BY month`,
		propertyID, from, to,
	)
	return collect(rows, err, scanMonthlyTotal)
}

func (r *expenseRepo) TotalsByCategory(ctx context.Context, propertyID *uuid.UUID, from, to time.Time) ([]CategoryTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, SUM(amount)::float8 AS total, COUNT(*)
		FROM expenses
		WHERE ($1::uuid IS NULL OR property_id = $1)
		  AND ($2::date IS NULL OR expense_date >= $2)
		  AND ($3::date IS NULL OR expense_date < $3)
		GROUP BY category
		ORDER BY total DESC, category ASC`,
		uuidArg(propertyID), optionalDate(from), optionalDate(to),
	)
	return collect(rows, err, func(row pgx.Row) (CategoryTotal, error) {
		var c CategoryTotal
		err := row.Scan(&c.Category, &c.Total, &c.Count)
		return c, err
	})
}

func (r *expenseRepo) UpdateIfVersion(ctx context.Context, e *models.Expense, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE expenses SET
			amount=$1, category=$2, description=$3, expense_date=$4, paid_by=$5,
			payment_method=$6, receipt_url=$7, notes=$8,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$9 AND row_version=$10`,
		e.Amount, e.Category, e.Description, e.ExpenseDate.Time, e.PaidBy,
		string(e.PaymentMethod), e.ReceiptURL, e.Notes, e.ID, expected,
	)
}

func (r *expenseRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Expense) error) (*models.Expense, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "expenses", id)
}

const expenseColumns = `
	id, property_id, amount::float8, category, description, expense_date, paid_by,
	payment_method, receipt_url, notes, created_at, updated_at, row_version`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var (
		e      models.Expense
		date   pgtype.Date
		method string
	)
	if err := row.Scan(
		&e.ID, &e.PropertyID, &e.Amount, &e.Category, &e.Description, &date, &e.PaidBy,
		&method, &e.ReceiptURL, &e.Notes, &e.CreatedAt, &e.UpdatedAt, &e.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.ExpenseDate = dateValue(date)
	e.PaymentMethod = models.PaymentMethod(method)
	return &e, nil
}

func scanMonthlyTotal(row pgx.Row) (MonthlyTotal, error) {
	var m MonthlyTotal
	err := row.Scan(&m.Month, &m.Total)
	return m, err
}

func optionalDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
