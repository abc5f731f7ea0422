package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager runs work that must commit or fail as a unit
type TransactionManager interface {
	// InTx runs fn inside a database transaction. The transaction commits when
	// fn returns nil and rolls back otherwise; fn's error is returned unchanged.
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
