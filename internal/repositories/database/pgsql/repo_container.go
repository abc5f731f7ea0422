package pgsql

import (
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. The result cache
// lives outside the database and is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, resultCache portsrepo.ResultCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SimulationRepo: newPgxSimulationRepository(dbPool),
		ResultCache:    resultCache,
	}
}
