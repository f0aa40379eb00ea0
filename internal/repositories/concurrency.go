package repositories

import (
	"context"
	"fmt"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// EntityWithVersion is any row that carries an optimistic-lock row_version.
type EntityWithVersion interface {
	comparable
	GetID() string
	GetRowVersion() int64
	SetRowVersion(int64)
}

type UpdateIfVersionFunc[T EntityWithVersion] func(
	ctx context.Context,
	entity T,
	expectedVersion int64,
) (pgconn.CommandTag, error)

type GetByIDFunc[T EntityWithVersion] func(
	ctx context.Context,
	id string,
) (T, error)

// WithRetry runs a read-mutate-update loop with optimistic locking.
// A missing row yields pgx.ErrNoRows; mutate errors abort the loop untouched.
func WithRetry[T EntityWithVersion](
	ctx context.Context,
	maxRetries int,
	id string,
	getByID GetByIDFunc[T],
	updateIfVersion UpdateIfVersionFunc[T],
	mutate func(T) error,
) (T, error) {
	var zero T
	for attempt := 0; attempt < maxRetries; attempt++ {
		current, err := getByID(ctx, id)
		if err != nil {
			return zero, err
		}
		if current == zero {
			return zero, pgx.ErrNoRows
		}

		oldVersion := current.GetRowVersion()
		if err := mutate(current); err != nil {
			return zero, err
		}

		tag, err := updateIfVersion(ctx, current, oldVersion)
		if err != nil {
			return zero, err
		}
		if tag.RowsAffected() == 1 {
			current.SetRowVersion(oldVersion + 1)
			return current, nil
		}
	}
	return zero, fmt.Errorf("%w: too much contention updating %q", utils.ErrRowVersionConflict, id)
}
