package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"github.com/SscSPs/rental_cashflow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// toolsHandler exposes single engine stages as calculators.
type toolsHandler struct {
	toolsService portssvc.ToolsSvc
}

// RegisterToolsRoutes registers the calculator routes.
func RegisterToolsRoutes(rg *gin.RouterGroup, toolsService portssvc.ToolsSvc) {
	h := &toolsHandler{toolsService: toolsService}

	tools := rg.Group("/tools")
	{
		tools.POST("/amortization", h.amortizationSchedule)
		tools.POST("/cap-rate/price", h.priceFromCapRate)
	}
}

// amortizationSchedule godoc
// @Summary Loan amortization schedule
// @Description Returns the yearly amortization schedule of a loan
// @Tags tools
// @Accept  json
// @Produce  json
// @Param   loan body dto.AmortizationRequest true "Loan terms"
// @Success 200 {object} dto.AmortizationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /tools/amortization [post]
func (h *toolsHandler) amortizationSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AmortizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AmortizationSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rows := h.toolsService.AmortizationSchedule(req.ToDomain())
	c.JSON(http.StatusOK, dto.ToAmortizationResponse(rows))
}

// priceFromCapRate godoc
// @Summary Price from cap rate
// @Description Returns the price at which an NOI yields the target cap rate, and the cap rate that price implies
// @Tags tools
// @Accept  json
// @Produce  json
// @Param   request body dto.CapRatePriceRequest true "NOI and target cap rate"
// @Success 200 {object} dto.CapRatePriceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /tools/cap-rate/price [post]
func (h *toolsHandler) priceFromCapRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CapRatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PriceFromCapRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	price, implied := h.toolsService.PriceFromCapRate(req.NOI, req.CapRate)
	c.JSON(http.StatusOK, dto.CapRatePriceResponse{Price: price, ImpliedCapRate: implied})
}
