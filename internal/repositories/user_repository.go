package repositories

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, params ListParams) ([]*models.User, int, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateIfVersion(ctx context.Context, u *models.User, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var UserListSpec = ListSpec{
	From: "users",
	Filters: map[string]Filter{
		"property_id": {Column: "property_id", Kind: FilterUUID},
		"is_active":   {Column: "is_active", Kind: FilterBool},
		"role": {Column: "role", Kind: FilterString, Allowed: []string{
			string(models.RoleAdmin), string(models.RoleManager), string(models.RoleStaff),
		}},
	},
	Search: []string{"username", "email"},
	Ordering: map[string]string{
		"username":   "username",
		"last_login": "last_login",
		"created_at": "created_at",
	},
	DefaultOrder: "created_at DESC",
}

type userRepo struct {
	*BaseVersionedRepo[*models.User]
	db DB
}

func NewUserRepository(db DB) UserRepository {
	r := &userRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectUser()+" WHERE id=$1", scanUser)
	return r
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (
			id, property_id, username, email, password_hash, role, is_active,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
		RETURNING created_at, updated_at, row_version`,
		u.ID, uuidArg(u.PropertyID), u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
	).Scan(&u.CreatedAt, &u.UpdatedAt, &u.RowVersion)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, baseSelectUser()+" WHERE username=$1", username))
}

func (r *userRepo) List(ctx context.Context, params ListParams) ([]*models.User, int, error) {
	return runList(ctx, r.db, UserListSpec, userColumns, params, scanUser)
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET last_login=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepo) UpdateIfVersion(ctx context.Context, u *models.User, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
		UPDATE users SET
			property_id=$1, username=$2, email=$3, password_hash=$4, role=$5, is_active=$6,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$7 AND row_version=$8`,
		uuidArg(u.PropertyID), u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
		u.ID, expected,
	)
}

func (r *userRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) (*models.User, error) {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "users", id)
}

const userColumns = `
	id, property_id, username, email, password_hash, role, is_active, last_login,
	created_at, updated_at, row_version`

func baseSelectUser() string {
	return "SELECT " + userColumns + " FROM users"
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u          models.User
		propertyID pgtype.UUID
		role       string
		lastLogin  pgtype.Timestamptz
	)
	if err := row.Scan(
		&u.ID, &propertyID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.IsActive, &lastLogin,
		&u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.PropertyID = uuidPtr(propertyID)
	u.Role = models.UserRole(role)
	u.LastLogin = timePtr(lastLogin)
	return &u, nil
}
