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

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	OwnerID     string          `json:"ownerId" binding:"required,max=100"`
	Category    string          `json:"category" binding:"required,max=100"`
	Name        string          `json:"name" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" binding:"required,gt=0"`
	Date        dates.Date      `json:"date" swaggertype:"string" example:"2024-01-15"`
	Description string          `json:"description" binding:"max=500"`
	Mood        string          `json:"mood" binding:"max=50"`
	IsHighValue bool            `json:"isHighValue"`
}

// CreateExpense handles recording an expense against the active budget.
// @Summary     Record an expense
// @Description Record an expense and deduct it from the owner's active budget. The date must fall within the budget period and defaults to today, or the period's last day once it has ended.
// @Tags        expense
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input, no active budget or insufficient balance"
// @Failure     409 {object} ErrorResponse "Budget removed concurrently"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	expense, err := h.expenseService.AddExpense(services.ExpenseInput{
		OwnerID:     req.OwnerID,
		Category:    req.Category,
		Name:        req.Name,
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Description: req.Description,
		Mood:        req.Mood,
		IsHighValue: req.IsHighValue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.OwnerID, models.AuditCreateExpense, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing the owner's expenses.
// @Summary     Get expenses
// @Description Get a page of recorded expenses, newest first, followed by the active period's subscription charges
// @Tags        expense
// @Produce     json
// @Param       ownerId path  string true  "Owner ID"
// @Param       page    query int    false "Page number (default 1)"
// @Param       limit   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[ledger.Entry] "Paginated ledger entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/{ownerId} [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
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

	result, err := h.expenseService.ListExpenses(ownerID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete an expense
// @Description Delete an expense and return its amount to the budget
// @Tags        expense
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := pathParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.DeleteExpense(expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(expense.OwnerID, models.AuditDeleteExpense, "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// GetCategoryPercentages handles the category breakdown of the active period.
// @Summary     Get spending by category
// @Description Get each category's share of the active period's spending, subscriptions included
// @Tags        expense
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {array}  ledger.CategoryShare "Category shares"
// @Failure     404 {object} ErrorResponse "No active budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/category-percentage/{ownerId} [get]
func (h *ExpenseHandler) GetCategoryPercentages(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	shares, err := h.expenseService.GetCategoryPercentages(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}

// GetDailyExpenses handles the per-day totals of the active period.
// @Summary     Get spending by day
// @Description Get the active period's spending per day, oldest first, subscriptions included
// @Tags        expense
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {array}  ledger.DayTotal "Daily totals"
// @Failure     404 {object} ErrorResponse "No active budget"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense/daily-expenses/{ownerId} [get]
func (h *ExpenseHandler) GetDailyExpenses(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	days, err := h.expenseService.GetDailyExpenses(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}
