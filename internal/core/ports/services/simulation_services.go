package services

import (
	"context"

	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
)

// SimulationRunnerSvc computes simulations without storing them
type SimulationRunnerSvc interface {
	// RunSimulation executes the pipeline on one input.
	RunSimulation(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error)

	// CompareScenarios runs the base input and each scenario concurrently.
	// The base outcome is first, followed by the scenarios in request order.
	CompareScenarios(ctx context.Context, base domain.SimulationInput, scenarios []domain.Scenario) ([]domain.ScenarioOutcome, error)
}

// SimulationStoreSvc manages a user's stored simulations
type SimulationStoreSvc interface {
	// CreateSimulation computes and persists a simulation for the user.
	CreateSimulation(ctx context.Context, name string, input domain.SimulationInput, userID string) (*domain.Simulation, error)

	// GetSimulation returns one of the user's simulations.
	GetSimulation(ctx context.Context, simulationID string, userID string) (*domain.Simulation, error)

	// ListSimulations returns a page of the user's simulations.
	ListSimulations(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error)

	// DeleteSimulation removes one of the user's simulations.
	DeleteSimulation(ctx context.Context, simulationID string, userID string) error
}

// SimulationSvcFacade combines all simulation-related service interfaces
type SimulationSvcFacade interface {
	SimulationRunnerSvc
	SimulationStoreSvc
}
