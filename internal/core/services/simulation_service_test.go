package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	"github.com/SscSPs/rental_cashflow_app/internal/core/engine"
	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/rental_cashflow_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SimulationRepository ---
type MockSimulationRepository struct {
	mock.Mock
}

func (m *MockSimulationRepository) SaveSimulation(ctx context.Context, simulation domain.Simulation) error {
	args := m.Called(ctx, simulation)
	return args.Error(0)
}

func (m *MockSimulationRepository) FindSimulationByID(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	args := m.Called(ctx, simulationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}

func (m *MockSimulationRepository) ListSimulationsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var sims []domain.Simulation
	if args.Get(0) != nil {
		sims = args.Get(0).([]domain.Simulation)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return sims, next, args.Error(2)
}

func (m *MockSimulationRepository) DeleteSimulation(ctx context.Context, simulationID string) error {
	args := m.Called(ctx, simulationID)
	return args.Error(0)
}

// --- Mock ResultCache ---
type MockResultCache struct {
	mock.Mock
}

func (m *MockResultCache) GetResult(ctx context.Context, key string) (*domain.SimulationResult, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.SimulationResult), args.Bool(1), args.Error(2)
}

func (m *MockResultCache) SetResult(ctx context.Context, key string, result domain.SimulationResult) error {
	args := m.Called(ctx, key, result)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleInput() domain.SimulationInput {
	return domain.SimulationInput{
		PropertyPrice:    dec("20000000"),
		AcquisitionCosts: dec("800000"),
		Loan: domain.LoanTerms{
			Principal:  dec("15000000"),
			AnnualRate: dec("0.02"),
			TermYears:  30,
			Method:     domain.EqualPayment,
		},
		Income: domain.IncomeAssumptions{
			GrossPotentialRent: dec("1200000"),
			VacancyRate:        dec("0.05"),
		},
		Expenses: domain.SimpleExpenses{ExpenseRate: dec("0.2")},
		Tax: domain.TaxAssumptions{
			DepreciableValue:          dec("10000000"),
			DepreciationLifeYears:     22,
			Ownership:                 domain.Individual,
			IndividualRate:            dec("0.3"),
			ShortTermCapitalGainsRate: dec("0.39"),
			LongTermCapitalGainsRate:  dec("0.2"),
			LongTermHoldingYears:      5,
		},
		Sale: domain.SaleAssumptions{
			ExitCapRate:   dec("0.05"),
			BrokerFeeRate: dec("0.03"),
		},
		HoldingYears:    3,
		DiscountRate:    dec("0.05"),
		TerminalCapRate: dec("0.05"),
	}
}

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

// --- Test Suite ---
type SimulationServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockSimulationRepository
	mockCache *MockResultCache
	service   portssvc.SimulationSvcFacade
}

func (suite *SimulationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSimulationRepository)
	suite.mockCache = new(MockResultCache)
	suite.service = services.NewSimulationService(
		engine.New(engine.DefaultRoundingPolicy),
		suite.mockRepo,
		services.WithResultCache(suite.mockCache),
		services.WithMaxScenarios(3),
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (suite *SimulationServiceTestSuite) expectCacheMiss() {
	suite.mockCache.On("GetResult", mock.Anything, mock.AnythingOfType("string")).Return(nil, false, nil)
	suite.mockCache.On("SetResult", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)
}

// --- Test Cases ---

func (suite *SimulationServiceTestSuite) TestRunSimulation_ComputesAndCaches() {
	ctx := context.Background()
	suite.expectCacheMiss()

	result, err := suite.service.RunSimulation(ctx, sampleInput())

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Computable)
	suite.Len(result.Rows, 3)
	suite.Require().NotNil(result.Valuation.CapRate)
	suite.GreaterOrEqual(result.Valuation.CapRate.Exponent(), int32(-4), "rates are rounded for output")
	suite.mockCache.AssertNumberOfCalls(suite.T(), "SetResult", 1)
}

func (suite *SimulationServiceTestSuite) TestRunSimulation_CacheHit() {
	ctx := context.Background()
	cached := &domain.SimulationResult{Computable: true, Rows: []domain.YearlyCashFlowRow{{Year: 1}}}
	suite.mockCache.On("GetResult", ctx, mock.AnythingOfType("string")).Return(cached, true, nil).Once()

	result, err := suite.service.RunSimulation(ctx, sampleInput())

	suite.Require().NoError(err)
	suite.Equal(cached, result)
	suite.mockCache.AssertNotCalled(suite.T(), "SetResult", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SimulationServiceTestSuite) TestRunSimulation_CacheFailureFallsBackToEngine() {
	ctx := context.Background()
	suite.mockCache.On("GetResult", ctx, mock.AnythingOfType("string")).Return(nil, false, errors.New("connection refused")).Once()
	suite.mockCache.On("SetResult", ctx, mock.AnythingOfType("string"), mock.Anything).Return(errors.New("connection refused")).Once()

	result, err := suite.service.RunSimulation(ctx, sampleInput())

	suite.Require().NoError(err)
	suite.True(result.Computable)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *SimulationServiceTestSuite) TestRunSimulation_NotComputableIsNotAnError() {
	ctx := context.Background()
	suite.expectCacheMiss()
	in := sampleInput()
	in.HoldingYears = 0

	result, err := suite.service.RunSimulation(ctx, in)

	suite.Require().NoError(err)
	suite.False(result.Computable)
	suite.Empty(result.Rows)
}

func (suite *SimulationServiceTestSuite) TestRunSimulation_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.service.RunSimulation(ctx, sampleInput())

	suite.Nil(result)
	suite.ErrorIs(err, context.Canceled)
	suite.mockCache.AssertNotCalled(suite.T(), "GetResult", mock.Anything, mock.Anything)
}

func (suite *SimulationServiceTestSuite) TestCompareScenarios_OrderAndOverrides() {
	ctx := context.Background()
	suite.expectCacheMiss()
	years := 5
	higherRate := dec("0.04")
	scenarios := []domain.Scenario{
		{Name: "longer hold", Overrides: domain.ScenarioOverrides{HoldingYears: &years}},
		{Name: "higher rate", Overrides: domain.ScenarioOverrides{LoanRate: &higherRate}},
	}

	outcomes, err := suite.service.CompareScenarios(ctx, sampleInput(), scenarios)

	suite.Require().NoError(err)
	suite.Require().Len(outcomes, 3)
	suite.Equal(services.BaseScenarioName, outcomes[0].Name)
	suite.Equal("longer hold", outcomes[1].Name)
	suite.Equal("higher rate", outcomes[2].Name)
	suite.Len(outcomes[0].Result.Rows, 3)
	suite.Len(outcomes[1].Result.Rows, 5)
	suite.True(outcomes[2].Result.Rows[0].ADS.GreaterThan(outcomes[0].Result.Rows[0].ADS),
		"a higher loan rate raises debt service")
}

func (suite *SimulationServiceTestSuite) TestCompareScenarios_Validation() {
	ctx := context.Background()
	tests := []struct {
		name      string
		scenarios []domain.Scenario
	}{
		{"too many", []domain.Scenario{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}},
		{"empty name", []domain.Scenario{{Name: "  "}}},
		{"duplicate name", []domain.Scenario{{Name: "a"}, {Name: "a"}}},
		{"reserved name", []domain.Scenario{{Name: services.BaseScenarioName}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			outcomes, err := suite.service.CompareScenarios(ctx, sampleInput(), tt.scenarios)
			suite.Nil(outcomes)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockCache.AssertNotCalled(suite.T(), "GetResult", mock.Anything, mock.Anything)
}

func (suite *SimulationServiceTestSuite) TestCreateSimulation_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.expectCacheMiss()

	suite.mockRepo.On("SaveSimulation", ctx, mock.MatchedBy(func(s domain.Simulation) bool {
		return s.UserID == userID &&
			s.Name == "Tokyo flat" &&
			s.CreatedBy == userID &&
			s.CreatedAt.Equal(fixedNow) &&
			s.Version == 1 &&
			len(s.InputHash) == 16 &&
			s.Result.Computable
	})).Return(nil).Once()

	simulation, err := suite.service.CreateSimulation(ctx, "  Tokyo flat ", sampleInput(), userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(simulation)
	suite.NotEmpty(simulation.SimulationID)
	suite.Equal("Tokyo flat", simulation.Name)
	suite.Len(simulation.Result.Rows, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SimulationServiceTestSuite) TestCreateSimulation_SameInputSameHash() {
	ctx := context.Background()
	suite.expectCacheMiss()
	var hashes []string
	suite.mockRepo.On("SaveSimulation", ctx, mock.Anything).Run(func(args mock.Arguments) {
		hashes = append(hashes, args.Get(1).(domain.Simulation).InputHash)
	}).Return(nil).Twice()

	_, err := suite.service.CreateSimulation(ctx, "first", sampleInput(), "user-1")
	suite.Require().NoError(err)
	_, err = suite.service.CreateSimulation(ctx, "second", sampleInput(), "user-1")
	suite.Require().NoError(err)

	suite.Require().Len(hashes, 2)
	suite.Equal(hashes[0], hashes[1])
}

func (suite *SimulationServiceTestSuite) TestCreateSimulation_HashIgnoresDecimalScale() {
	ctx := context.Background()
	suite.expectCacheMiss()
	var hashes []string
	suite.mockRepo.On("SaveSimulation", ctx, mock.Anything).Run(func(args mock.Arguments) {
		hashes = append(hashes, args.Get(1).(domain.Simulation).InputHash)
	}).Return(nil).Times(3)

	short := sampleInput()
	short.Income.VacancyRate = dec("0.05")
	padded := sampleInput()
	padded.Income.VacancyRate = dec("0.0500")
	other := sampleInput()
	other.Income.VacancyRate = dec("0.06")

	for _, in := range []domain.SimulationInput{short, padded, other} {
		_, err := suite.service.CreateSimulation(ctx, "scale", in, "user-1")
		suite.Require().NoError(err)
	}

	suite.Require().Len(hashes, 3)
	suite.Equal(hashes[0], hashes[1], "equal values hash alike whatever their scale")
	suite.NotEqual(hashes[0], hashes[2])
}

func (suite *SimulationServiceTestSuite) TestCreateSimulation_EmptyName() {
	simulation, err := suite.service.CreateSimulation(context.Background(), " ", sampleInput(), "user-1")

	suite.Nil(simulation)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSimulation", mock.Anything, mock.Anything)
}

func (suite *SimulationServiceTestSuite) TestCreateSimulation_RepoError() {
	ctx := context.Background()
	suite.expectCacheMiss()
	suite.mockRepo.On("SaveSimulation", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	simulation, err := suite.service.CreateSimulation(ctx, "dup", sampleInput(), "user-1")

	suite.Nil(simulation)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SimulationServiceTestSuite) TestGetSimulation() {
	ctx := context.Background()
	stored := &domain.Simulation{SimulationID: "sim-1", UserID: "owner"}
	suite.mockRepo.On("FindSimulationByID", ctx, "sim-1").Return(stored, nil)
	suite.mockRepo.On("FindSimulationByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	got, err := suite.service.GetSimulation(ctx, "sim-1", "owner")
	suite.Require().NoError(err)
	suite.Equal(stored, got)

	got, err = suite.service.GetSimulation(ctx, "sim-1", "intruder")
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	got, err = suite.service.GetSimulation(ctx, "missing", "owner")
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SimulationServiceTestSuite) TestListSimulations() {
	ctx := context.Background()
	token := "next"
	suite.mockRepo.On("ListSimulationsByUser", ctx, "owner", 10, (*string)(nil)).
		Return([]domain.Simulation{{SimulationID: "sim-1"}}, &token, nil).Once()
	suite.mockRepo.On("ListSimulationsByUser", ctx, "empty", 10, (*string)(nil)).
		Return(nil, nil, nil).Once()
	suite.mockRepo.On("ListSimulationsByUser", ctx, "broken", 10, (*string)(nil)).
		Return(nil, nil, errors.New("db down")).Once()

	sims, next, err := suite.service.ListSimulations(ctx, "owner", 10, nil)
	suite.Require().NoError(err)
	suite.Len(sims, 1)
	suite.Equal(&token, next)

	sims, next, err = suite.service.ListSimulations(ctx, "empty", 10, nil)
	suite.Require().NoError(err)
	suite.NotNil(sims)
	suite.Empty(sims)
	suite.Nil(next)

	_, _, err = suite.service.ListSimulations(ctx, "broken", 10, nil)
	suite.Error(err)
}

func (suite *SimulationServiceTestSuite) TestDeleteSimulation() {
	ctx := context.Background()
	stored := &domain.Simulation{SimulationID: "sim-1", UserID: "owner"}
	suite.mockRepo.On("FindSimulationByID", ctx, "sim-1").Return(stored, nil)
	suite.mockRepo.On("DeleteSimulation", ctx, "sim-1").Return(nil).Once()

	err := suite.service.DeleteSimulation(ctx, "sim-1", "intruder")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteSimulation", ctx, "sim-1")

	err = suite.service.DeleteSimulation(ctx, "sim-1", "owner")
	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSimulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationServiceTestSuite))
}
