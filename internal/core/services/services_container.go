package services

import (
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/rental_cashflow_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	eng := engine.New(engine.RoundingPolicy{
		MoneyPlaces: cfg.MoneyPlaces,
		RatePlaces:  cfg.RatePlaces,
	})

	options := []SimulationServiceOption{WithMaxScenarios(cfg.MaxCompareScenarios)}
	if repos.ResultCache != nil {
		options = append(options, WithResultCache(repos.ResultCache))
	}

	return &portssvc.ServiceContainer{
		Simulation: NewSimulationService(eng, repos.SimulationRepo, options...),
		Tools:      NewToolsService(eng),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SimulationSvcFacade = (*simulationService)(nil)
	_ portssvc.ToolsSvc            = (*toolsService)(nil)
)
