package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
)

const updateMaxRetries = 3

// BaseVersionedRepo holds a SELECT-by-id statement and a row scanner for T,
// and provides GetByID plus the optimistic-lock UpdateWithRetry loop.
type BaseVersionedRepo[T EntityWithVersion] struct {
	db         DB
	selectByID string
	scan       func(row pgx.Row) (T, error)
}

func NewBaseRepo[T EntityWithVersion](
	db DB,
	selectByID string,
	scan func(pgx.Row) (T, error),
) *BaseVersionedRepo[T] {
	return &BaseVersionedRepo[T]{db: db, selectByID: selectByID, scan: scan}
}

func (b *BaseVersionedRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	row := b.db.QueryRow(ctx, b.selectByID, id)
	return b.scan(row)
}

func (b *BaseVersionedRepo[T]) UpdateWithRetry(
	ctx context.Context,
	id string,
	mutate func(T) error,
	updateIfVersion UpdateIfVersionFunc[T],
) (T, error) {
	return WithRetry(ctx, updateMaxRetries, id, b.GetByID, updateIfVersion, mutate)
}
