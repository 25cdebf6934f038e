package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altora/backoffice/pkg/constants"
)

var (
	ErrNoPool     = errors.New("database pool not found in context")
	ErrNoTx       = errors.New("transaction not found in context")
	ErrNoTenantID = errors.New("tenant id not found in context")
)

// Querier is the subset of pgx shared by pgxpool.Pool and pgx.Tx. Repositories
// depend on it so reads can run on the pool and writes inside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func WithPool(ctx context.Context, pool *pgxpool.Pool) context.Context {
	return context.WithValue(ctx, constants.PoolKey, pool)
}

func UsePool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, ok := ctx.Value(constants.PoolKey).(*pgxpool.Pool)
	if !ok {
		return nil, ErrNoPool
	}
	return pool, nil
}

func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, constants.TxKey, tx)
}

// UseTx returns the context transaction, falling back to the pool when no
// transaction is open.
func UseTx(ctx context.Context) (Querier, error) {
	if tx, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok {
		return tx, nil
	}
	if pool, ok := ctx.Value(constants.PoolKey).(*pgxpool.Pool); ok {
		return pool, nil
	}
	return nil, ErrNoTx
}

func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, id)
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoTenantID
	}
	return id, nil
}

// InTx runs fn inside a transaction taken from the pool, committing on nil
// error and rolling back otherwise. A context that already carries a
// transaction reuses it; a context with no database at all (unit tests with
// fake repositories) runs fn directly.
func InTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok {
		return fn(ctx)
	}
	pool, err := UsePool(ctx)
	if err != nil {
		if errors.Is(err, ErrNoPool) {
			return fn(ctx)
		}
		return err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
