package repositories

import (
	"context"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
)

// ResultCache stores simulation results by input hash.
// A miss is reported through the boolean, never as an error.
type ResultCache interface {
	GetResult(ctx context.Context, key string) (*domain.SimulationResult, bool, error)
	SetResult(ctx context.Context, key string, result domain.SimulationResult) error
}
