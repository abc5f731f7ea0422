package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"github.com/SscSPs/rental_cashflow_app/internal/handlers"
	"github.com/SscSPs/rental_cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SimulationService ---
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) RunSimulation(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationResult), args.Error(1)
}

func (m *MockSimulationService) CompareScenarios(ctx context.Context, base domain.SimulationInput, scenarios []domain.Scenario) ([]domain.ScenarioOutcome, error) {
	args := m.Called(ctx, base, scenarios)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScenarioOutcome), args.Error(1)
}

func (m *MockSimulationService) CreateSimulation(ctx context.Context, name string, input domain.SimulationInput, userID string) (*domain.Simulation, error) {
	args := m.Called(ctx, name, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}

func (m *MockSimulationService) GetSimulation(ctx context.Context, simulationID string, userID string) (*domain.Simulation, error) {
	args := m.Called(ctx, simulationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}

func (m *MockSimulationService) ListSimulations(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Simulation, *string, error) {
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

func (m *MockSimulationService) DeleteSimulation(ctx context.Context, simulationID string, userID string) error {
	args := m.Called(ctx, simulationID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.SimulationSvcFacade = (*MockSimulationService)(nil)

const testIssuer = "rcf-test"

const inputJSON = `{
	"propertyPrice": "30000000",
	"acquisitionCosts": "1200000",
	"loan": {"principal": "25200000", "annualRate": "0.023", "termYears": 35, "method": "EQUAL_PAYMENT"},
	"income": {"grossPotentialRent": "1800000", "vacancyRate": "0.05", "rentGrowthRate": "0.01"},
	"expenses": {"mode": "SIMPLE", "expenseRate": "0.2"},
	"tax": {"ownership": "INDIVIDUAL", "individualRate": "0.3", "longTermHoldingYears": 5},
	"sale": {"exitCapRate": "0.05", "brokerFeeRate": "0.03"},
	"holdingYears": 10,
	"discountRate": "0.05",
	"terminalCapRate": "0.05"
}`

// --- Test Suite ---
type SimulationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSimulationService
	jwtSecret   string
	userID      string
}

func (suite *SimulationHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterGinValidators())
}

func (suite *SimulationHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, testIssuer))

	suite.mockService = new(MockSimulationService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSimulationRoutes(v1, suite.mockService)
}

// generateTestToken creates a signed JWT for the test user.
func (suite *SimulationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SimulationHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *SimulationHandlerTestSuite) TestRunSimulation_Success() {
	irr := decimal.RequireFromString("0.0712")
	result := &domain.SimulationResult{
		Computable: true,
		Rows:       []domain.YearlyCashFlowRow{{Year: 1, NOI: decimal.NewFromInt(1000000)}},
		Valuation:  domain.ValuationResult{IRR: &irr},
	}
	suite.mockService.On("RunSimulation", mock.Anything, mock.MatchedBy(func(in domain.SimulationInput) bool {
		_, simple := in.Expenses.(domain.SimpleExpenses)
		return in.HoldingYears == 10 && simple && in.Loan.Method == domain.EqualPayment
	})).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/simulations/run", inputJSON)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.SimulationResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Computable)
	suite.Len(body.Rows, 1)
	suite.Require().NotNil(body.Valuation.IRR)
	suite.True(body.Valuation.IRR.Equal(irr))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SimulationHandlerTestSuite) TestRunSimulation_ValidationError() {
	body := strings.Replace(inputJSON, `"vacancyRate": "0.05"`, `"vacancyRate": "1.5"`, 1)

	w := suite.do(http.MethodPost, "/api/v1/simulations/run", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "fraction")
	suite.mockService.AssertNotCalled(suite.T(), "RunSimulation", mock.Anything, mock.Anything)
}

func (suite *SimulationHandlerTestSuite) TestRunSimulation_Unauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/simulations/run", strings.NewReader(inputJSON))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_Success() {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := &domain.Simulation{
		SimulationID: uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Tokyo flat",
		InputHash:    "0123456789abcdef",
		Result:       domain.SimulationResult{Computable: true},
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: suite.userID, LastUpdatedAt: now, LastUpdatedBy: suite.userID, Version: 1},
	}
	suite.mockService.On("CreateSimulation", mock.Anything, "Tokyo flat", mock.Anything, suite.userID).Return(stored, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/simulations", `{"name": "Tokyo flat", "input": `+inputJSON+`}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var body dto.SimulationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(stored.SimulationID, body.SimulationID)
	suite.Equal(int64(1), body.Version)
	suite.NotNil(body.Result.Rows, "rows are an empty list rather than null")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/simulations", `{"input": `+inputJSON+`}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateSimulation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SimulationHandlerTestSuite) TestGetSimulation_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"forbidden", fmt.Errorf("%w: not yours", apperrors.ErrForbidden), http.StatusForbidden},
		{"unexpected", fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			id := uuid.NewString()
			suite.mockService.On("GetSimulation", mock.Anything, id, suite.userID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/simulations/"+id, "")

			suite.Equal(tt.status, w.Code)
			suite.NotContains(w.Body.String(), "db down", "internal errors are not leaked")
		})
	}
}

func (suite *SimulationHandlerTestSuite) TestGetSimulation_Success() {
	id := uuid.NewString()
	suite.mockService.On("GetSimulation", mock.Anything, id, suite.userID).
		Return(&domain.Simulation{SimulationID: id, UserID: suite.userID, Name: "kept"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/simulations/"+id, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"kept"`)
}

func (suite *SimulationHandlerTestSuite) TestListSimulations_Pagination() {
	token := "page-2"
	next := "page-3"
	suite.mockService.On("ListSimulations", mock.Anything, suite.userID, 5, mock.MatchedBy(func(t *string) bool {
		return t != nil && *t == token
	})).Return([]domain.Simulation{{SimulationID: "a"}, {SimulationID: "b"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/simulations?limit=5&nextToken="+token, "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var body dto.ListSimulationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Simulations, 2)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
}

func (suite *SimulationHandlerTestSuite) TestListSimulations_DefaultLimitAndBadToken() {
	suite.mockService.On("ListSimulations", mock.Anything, suite.userID, 20, (*string)(nil)).
		Return([]domain.Simulation{}, nil, nil).Once()
	w := suite.do(http.MethodGet, "/api/v1/simulations", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "nextToken")

	badToken := apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", apperrors.ErrValidation)
	suite.mockService.On("ListSimulations", mock.Anything, suite.userID, 20, mock.Anything).
		Return(nil, nil, badToken).Once()
	w = suite.do(http.MethodGet, "/api/v1/simulations?nextToken=garbage", "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/simulations?limit=500", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestCompareScenarios() {
	outcomes := []domain.ScenarioOutcome{
		{Name: "base", Result: domain.SimulationResult{Computable: true}},
		{Name: "rate up", Result: domain.SimulationResult{Computable: true}},
	}
	suite.mockService.On("CompareScenarios", mock.Anything, mock.Anything, mock.MatchedBy(func(s []domain.Scenario) bool {
		return len(s) == 1 && s[0].Name == "rate up" && s[0].Overrides.LoanRate != nil
	})).Return(outcomes, nil).Once()

	body := `{"base": ` + inputJSON + `, "scenarios": [{"name": "rate up", "overrides": {"loanRate": "0.04"}}]}`
	w := suite.do(http.MethodPost, "/api/v1/simulations/compare", body)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.CompareScenariosResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Outcomes, 2)
	suite.Equal("base", res.Outcomes[0].Name)
}

func (suite *SimulationHandlerTestSuite) TestCompareScenarios_TooMany() {
	suite.mockService.On("CompareScenarios", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: at most 1 scenarios may be compared", apperrors.ErrValidation)).Once()

	body := `{"base": ` + inputJSON + `, "scenarios": [{"name": "a"}, {"name": "b"}]}`
	w := suite.do(http.MethodPost, "/api/v1/simulations/compare", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "at most")
}

func (suite *SimulationHandlerTestSuite) TestDeleteSimulation() {
	id := uuid.NewString()
	suite.mockService.On("DeleteSimulation", mock.Anything, id, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/simulations/"+id, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSimulationHandler(t *testing.T) {
	suite.Run(t, new(SimulationHandlerTestSuite))
}
