package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	portsrepo "github.com/SscSPs/rental_cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BaseScenarioName labels the unmodified input in a comparison.
const BaseScenarioName = "base"

// DefaultMaxScenarios bounds the variants of one comparison when no limit is configured.
const DefaultMaxScenarios = 10

// simulationService implements the SimulationSvcFacade interface
type simulationService struct {
	BaseService
	engine         *engine.Engine
	simulationRepo portsrepo.SimulationRepositoryFacade
	resultCache    portsrepo.ResultCache
	maxScenarios   int
	now            func() time.Time
}

// SimulationServiceOption is a functional option for configuring the simulation service
type SimulationServiceOption func(*simulationService)

// WithResultCache adds a cache for computed results
func WithResultCache(cache portsrepo.ResultCache) SimulationServiceOption {
	return func(s *simulationService) {
		s.resultCache = cache
	}
}

// WithMaxScenarios limits how many variants one comparison may run
func WithMaxScenarios(limit int) SimulationServiceOption {
	return func(s *simulationService) {
		if limit > 0 {
			s.maxScenarios = limit
		}
	}
}

// WithClock replaces the clock used for audit timestamps
func WithClock(now func() time.Time) SimulationServiceOption {
	return func(s *simulationService) {
		s.now = now
	}
}

// NewSimulationService creates a new simulation service with the provided options
func NewSimulationService(eng *engine.Engine, repo portsrepo.SimulationRepositoryFacade, options ...SimulationServiceOption) portssvc.SimulationSvcFacade {
	svc := &simulationService{
		engine:         eng,
		simulationRepo: repo,
		maxScenarios:   DefaultMaxScenarios,
		now:            time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure simulationService implements the SimulationSvcFacade interface
var _ portssvc.SimulationSvcFacade = (*simulationService)(nil)

func (s *simulationService) RunSimulation(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	result, _, err := s.run(ctx, input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// run computes the output-rounded result of input, consulting the cache first.
// It also returns the input hash used as cache key.
func (s *simulationService) run(ctx context.Context, input domain.SimulationInput) (domain.SimulationResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.SimulationResult{}, "", err
	}

	key, err := s.hashInput(input)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash simulation input")
		return domain.SimulationResult{}, "", err
	}

	if s.resultCache != nil {
		cached, found, err := s.resultCache.GetResult(ctx, key)
		if err != nil {
			// A broken cache only costs a recomputation
			s.LogError(ctx, err, "Failed to read result cache", slog.String("input_hash", key))
		} else if found {
			s.LogDebug(ctx, "Simulation served from cache", slog.String("input_hash", key))
			return *cached, key, nil
		}
	}

	result := s.engine.Policy().Result(s.engine.Simulate(input))
	if !result.Computable {
		s.LogInfo(ctx, "Simulation input is not computable", slog.String("input_hash", key))
	}

	if s.resultCache != nil {
		if err := s.resultCache.SetResult(ctx, key, result); err != nil {
			s.LogError(ctx, err, "Failed to write result cache", slog.String("input_hash", key))
		}
	}

	s.LogDebug(ctx, "Simulation computed",
		slog.String("input_hash", key),
		slog.Int("years", len(result.Rows)))
	return result, key, nil
}

func (s *simulationService) CompareScenarios(ctx context.Context, base domain.SimulationInput, scenarios []domain.Scenario) ([]domain.ScenarioOutcome, error) {
	if len(scenarios) > s.maxScenarios {
		err := fmt.Errorf("%w: at most %d scenarios may be compared, got %d", apperrors.ErrValidation, s.maxScenarios, len(scenarios))
		s.LogError(ctx, err, "Too many scenarios")
		return nil, err
	}

	seen := map[string]bool{BaseScenarioName: true}
	for _, sc := range scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: scenario name is required", apperrors.ErrValidation)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate scenario name %q", apperrors.ErrValidation, name)
		}
		seen[name] = true
	}

	outcomes := make([]domain.ScenarioOutcome, len(scenarios)+1)
	g, gctx := errgroup.WithContext(ctx)

	// Each goroutine owns its input copy and writes one slot of outcomes
	g.Go(func() error {
		result, _, err := s.run(gctx, base)
		if err != nil {
			return err
		}
		outcomes[0] = domain.ScenarioOutcome{Name: BaseScenarioName, Result: result}
		return nil
	})
	for i, sc := range scenarios {
		input := sc.Overrides.Apply(base)
		name := strings.TrimSpace(sc.Name)
		g.Go(func() error {
			result, _, err := s.run(gctx, input)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", name, err)
			}
			outcomes[i+1] = domain.ScenarioOutcome{Name: name, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Scenario comparison failed")
		return nil, err
	}

	s.LogInfo(ctx, "Scenarios compared", slog.Int("scenario_count", len(scenarios)))
	return outcomes, nil
}

func (s *simulationService) CreateSimulation(ctx context.Context, name string, input domain.SimulationInput, userID string) (*domain.Simulation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: simulation name is required", apperrors.ErrValidation)
	}

	result, key, err := s.run(ctx, input)
	if err != nil {
		return nil, err
	}

	simulation := domain.Simulation{
		SimulationID: uuid.NewString(),
		UserID:       userID,
		Name:         name,
		Input:        input,
		Result:       result,
		InputHash:    key,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}

	if err := s.simulationRepo.SaveSimulation(ctx, simulation); err != nil {
		s.LogError(ctx, err, "Failed to save simulation in repository",
			slog.String("simulation_id", simulation.SimulationID))
		return nil, fmt.Errorf("failed to save simulation: %w", err)
	}

	s.LogInfo(ctx, "Simulation created successfully",
		slog.String("simulation_id", simulation.SimulationID),
		slog.String("user_id", userID))
	return &simulation, nil
}

func (s *simulationService) GetSimulation(ctx context.Context, simulationID string, userID string) (*domain.Simulation, error) {
	simulation, err := s.simulationRepo.FindSimulationByID(ctx, simulationID)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find simulation by ID in repository",
				slog.String("simulation_id", simulationID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, simulation, userID); err != nil {
		return nil, err
	}
	return simulation, nil
}

func (s *simulationService) ListSimulations(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error) {
	simulations, next, err := s.simulationRepo.ListSimulationsByUser(ctx, userID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list simulations from repository",
			slog.String("user_id", userID),
			slog.Int("limit", limit))
		return nil, nil, fmt.Errorf("failed to list simulations: %w", err)
	}

	if simulations == nil {
		simulations = []domain.Simulation{} // Return empty slice if repo returns nil
	}

	s.LogDebug(ctx, "Simulations listed successfully", slog.Int("count", len(simulations)))
	return simulations, next, nil
}

func (s *simulationService) DeleteSimulation(ctx context.Context, simulationID string, userID string) error {
	if _, err := s.GetSimulation(ctx, simulationID, userID); err != nil {
		return err
	}

	if err := s.simulationRepo.DeleteSimulation(ctx, simulationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete simulation in repository",
				slog.String("simulation_id", simulationID))
		}
		return err
	}

	s.LogInfo(ctx, "Simulation deleted successfully", slog.String("simulation_id", simulationID))
	return nil
}

// hashInput digests the canonical JSON of input together with the rounding
// policy, since both determine the output.
func (s *simulationService) hashInput(input domain.SimulationInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode simulation input: %w", err)
	}
	policy := s.engine.Policy()
	d := xxhash.New()
	_, _ = d.Write(raw)
	_, _ = fmt.Fprintf(d, "|m%d|r%d", policy.MoneyPlaces, policy.RatePlaces)
	return fmt.Sprintf("%016x", d.Sum64()), nil
}
