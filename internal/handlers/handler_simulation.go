package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"github.com/SscSPs/rental_cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// simulationHandler handles HTTP requests related to simulations.
type simulationHandler struct {
	simulationService portssvc.SimulationSvcFacade
}

// newSimulationHandler creates a new simulationHandler.
func newSimulationHandler(ss portssvc.SimulationSvcFacade) *simulationHandler {
	return &simulationHandler{
		simulationService: ss,
	}
}

// RegisterSimulationRoutes registers routes related to simulations.
func RegisterSimulationRoutes(rg *gin.RouterGroup, simulationService portssvc.SimulationSvcFacade) {
	h := newSimulationHandler(simulationService)

	simulations := rg.Group("/simulations")
	{
		simulations.POST("/run", h.runSimulation)
		simulations.POST("/compare", h.compareScenarios)
		simulations.POST("", h.createSimulation)
		simulations.GET("", h.listSimulations)
		simulations.GET("/:simulationID", h.getSimulation)
		simulations.DELETE("/:simulationID", h.deleteSimulation)
	}
}

// runSimulation godoc
// @Summary Run a simulation
// @Description Computes the yearly ledger and metrics without storing them
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   input body dto.SimulationInputRequest true "Simulation assumptions"
// @Success 200 {object} dto.SimulationResultResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to run simulation"
// @Security BearerAuth
// @Router /simulations/run [post]
func (h *simulationHandler) runSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SimulationInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.simulationService.RunSimulation(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to run simulation")
		return
	}

	logger.Info("Simulation run", slog.Bool("computable", result.Computable), slog.Int("years", len(result.Rows)))
	c.JSON(http.StatusOK, dto.ToSimulationResultResponse(result))
}

// compareScenarios godoc
// @Summary Compare what-if scenarios
// @Description Runs a base input and named variants concurrently. The base outcome is listed first.
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   request body dto.CompareScenariosRequest true "Base input and scenarios"
// @Success 200 {object} dto.CompareScenariosResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compare scenarios"
// @Security BearerAuth
// @Router /simulations/compare [post]
func (h *simulationHandler) compareScenarios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CompareScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompareScenarios", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcomes, err := h.simulationService.CompareScenarios(c.Request.Context(), req.Base.ToDomain(), req.ToDomainScenarios())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compare scenarios")
		return
	}

	logger.Info("Scenarios compared", slog.Int("outcomes", len(outcomes)))
	c.JSON(http.StatusOK, dto.ToCompareScenariosResponse(outcomes))
}

// createSimulation godoc
// @Summary Store a simulation
// @Description Computes a simulation and stores it for the logged-in user
// @Tags simulations
// @Accept  json
// @Produce  json
// @Param   simulation body dto.CreateSimulationRequest true "Simulation name and assumptions"
// @Success 201 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create simulation"
// @Security BearerAuth
// @Router /simulations [post]
func (h *simulationHandler) createSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSimulation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	simulation, err := h.simulationService.CreateSimulation(c.Request.Context(), req.Name, req.Input.ToDomain(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create simulation")
		return
	}

	logger.Info("Simulation created successfully", slog.String("simulation_id", simulation.SimulationID))
	c.JSON(http.StatusCreated, dto.ToSimulationResponse(simulation))
}

// listSimulations godoc
// @Summary List simulations
// @Description Lists the logged-in user's simulations, newest first
// @Tags simulations
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSimulationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list simulations"
// @Security BearerAuth
// @Router /simulations [get]
func (h *simulationHandler) listSimulations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSimulationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSimulations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	simulations, nextToken, err := h.simulationService.ListSimulations(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list simulations")
		return
	}

	logger.Debug("Simulations listed", slog.Int("count", len(simulations)))
	c.JSON(http.StatusOK, dto.ToListSimulationsResponse(simulations, nextToken))
}

// getSimulation godoc
// @Summary Get a simulation by ID
// @Description Retrieves a stored simulation with its full ledger
// @Tags simulations
// @Produce  json
// @Param   simulationID path string true "Simulation ID"
// @Success 200 {object} dto.SimulationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another user's simulation)"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve simulation"
// @Security BearerAuth
// @Router /simulations/{simulationID} [get]
func (h *simulationHandler) getSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("simulation_id", simulationID))
	simulation, err := h.simulationService.GetSimulation(c.Request.Context(), simulationID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve simulation")
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationResponse(simulation))
}

// deleteSimulation godoc
// @Summary Delete a simulation
// @Description Deletes one of the logged-in user's simulations
// @Tags simulations
// @Param   simulationID path string true "Simulation ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another user's simulation)"
// @Failure 404 {object} map[string]string "Simulation not found"
// @Failure 500 {object} map[string]string "Failed to delete simulation"
// @Security BearerAuth
// @Router /simulations/{simulationID} [delete]
func (h *simulationHandler) deleteSimulation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	simulationID := c.Param("simulationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("simulation_id", simulationID))
	if err := h.simulationService.DeleteSimulation(c.Request.Context(), simulationID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete simulation")
		return
	}

	logger.Info("Simulation deleted successfully")
	c.Status(http.StatusNoContent)
}
