package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/services"
)

// AdvisorHandler serves forecasts and generated advice.
type AdvisorHandler struct {
	advisorService services.AdvisorServicer
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService services.AdvisorServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// GetForecast handles the spending forecast of the active period.
// @Summary     Get forecast
// @Description Project end-of-period spending, trend and a 12-month net-worth outlook. Owners without a budget get hasBudget=false.
// @Tags        advisor
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {object} forecast.Result "Forecast"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advisor/forecast/{ownerId} [get]
func (h *AdvisorHandler) GetForecast(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.advisorService.GetForecast(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAdvice handles generated advice for the active period.
// @Summary     Get advice
// @Description Get advice text for the active period. When the generator is unavailable the response is still 200 with available=false.
// @Tags        advisor
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {object} services.Advice "Advice"
// @Failure     404 {object} ErrorResponse "No active budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advisor/advice/{ownerId} [get]
func (h *AdvisorHandler) GetAdvice(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	advice, err := h.advisorService.GetAdvice(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advice)
}
