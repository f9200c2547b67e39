package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
	"budgetwise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CreateBudgetRequest represents the request payload for starting a budget period.
type CreateBudgetRequest struct {
	OwnerID       string          `json:"ownerId" binding:"required,max=100"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number" binding:"required,gt=0"`
	SavingsTarget decimal.Decimal `json:"savingsTarget" swaggertype:"number" binding:"gte=0"`
	StartDate     dates.Date      `json:"startDate" swaggertype:"string" example:"2024-01-01" binding:"required"`
	EndDate       dates.Date      `json:"endDate" swaggertype:"string" example:"2024-01-31" binding:"required"`
}

// ReplaceBudgetRequest represents the request payload for replacing the active budget.
type ReplaceBudgetRequest struct {
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number" binding:"required,gt=0"`
	SavingsTarget decimal.Decimal `json:"savingsTarget" swaggertype:"number" binding:"gte=0"`
	StartDate     dates.Date      `json:"startDate" swaggertype:"string" example:"2024-02-01" binding:"required"`
	EndDate       dates.Date      `json:"endDate" swaggertype:"string" example:"2024-02-29" binding:"required"`
}

func (r ReplaceBudgetRequest) input(ownerID string) services.BudgetInput {
	return services.BudgetInput{
		OwnerID:       ownerID,
		TotalAmount:   r.TotalAmount,
		SavingsTarget: r.SavingsTarget,
		StartDate:     r.StartDate.Time,
		EndDate:       r.EndDate.Time,
	}
}

// CreateBudget handles starting a new budget period.
// @Summary     Create a budget
// @Description Start a new budget period. An existing active budget is archived first.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	in := ReplaceBudgetRequest{
		TotalAmount:   req.TotalAmount,
		SavingsTarget: req.SavingsTarget,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}.input(req.OwnerID)

	budget, err := h.budgetService.CreateBudget(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.OwnerID, models.AuditCreateBudget, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"totalAmount": req.TotalAmount.String(), "savingsTarget": req.SavingsTarget.String()})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// ReplaceBudget handles replacing the owner's active budget.
// @Summary     Replace the active budget
// @Description Archive the active budget with its achievement and start a new period
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       ownerId path string               true "Owner ID"
// @Param       request body ReplaceBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No active budget"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{ownerId} [put]
func (h *BudgetHandler) ReplaceBudget(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReplaceBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	budget, err := h.budgetService.ReplaceBudget(req.input(ownerID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(ownerID, models.AuditReplaceBudget, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"totalAmount": req.TotalAmount.String(), "savingsTarget": req.SavingsTarget.String()})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudget handles retrieving the owner's active budget.
// @Summary     Get the active budget
// @Description Get the active budget with its spendable and subscription-adjusted balances
// @Tags        budget
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {object} services.BudgetOverview "Budget overview"
// @Failure     404 {object} ErrorResponse "No active budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/{ownerId} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.budgetService.GetBudgetOverview(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetBudgetHistory handles listing archived budget periods.
// @Summary     Get budget history
// @Description Get a paginated list of archived budget periods, newest first
// @Tags        budget
// @Produce     json
// @Param       ownerId path  string true  "Owner ID"
// @Param       page    query int    false "Page number (default 1)"
// @Param       limit   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetHistory] "Paginated history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/history/{ownerId} [get]
func (h *BudgetHandler) GetBudgetHistory(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.budgetService.GetBudgetHistory(ownerID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
