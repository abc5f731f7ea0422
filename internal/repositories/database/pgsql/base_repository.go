package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the pool and transaction handling shared by repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// InTx runs fn in a transaction, committing only when fn succeeds
func (r *BaseRepository) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	// After a commit this returns pgx.ErrTxClosed, which is ignored
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}
