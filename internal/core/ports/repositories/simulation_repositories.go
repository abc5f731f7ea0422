package repositories

import (
	"context"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
)

// SimulationReader defines read operations for stored simulations
type SimulationReader interface {
	// FindSimulationByID retrieves a simulation by its ID.
	FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error)

	// ListSimulationsByUser retrieves a page of the user's simulations, newest first.
	// It returns the page and a token for the next page (nil when there is none).
	ListSimulationsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error)
}

// SimulationWriter defines write operations for stored simulations
type SimulationWriter interface {
	// SaveSimulation persists a new simulation.
	SaveSimulation(ctx context.Context, simulation domain.Simulation) error

	// DeleteSimulation removes a simulation.
	DeleteSimulation(ctx context.Context, simulationID string) error
}

// SimulationRepositoryFacade combines all simulation-related repository interfaces
type SimulationRepositoryFacade interface {
	SimulationReader
	SimulationWriter
}

// SimulationRepositoryWithTx extends SimulationRepositoryFacade with transaction capabilities
type SimulationRepositoryWithTx interface {
	SimulationRepositoryFacade
	TransactionManager
}
