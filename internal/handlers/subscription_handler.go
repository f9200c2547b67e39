package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
)

// SubscriptionHandler handles subscription-related requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
	auditService        services.AuditServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer, auditService services.AuditServicer) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, auditService: auditService}
}

// CreateSubscriptionRequest represents the request payload for registering a subscription.
type CreateSubscriptionRequest struct {
	OwnerID   string                   `json:"ownerId" binding:"required,max=100"`
	Name      string                   `json:"name" binding:"required,max=200"`
	Amount    decimal.Decimal          `json:"amount" swaggertype:"number" binding:"gte=0"`
	Cycle     models.SubscriptionCycle `json:"cycle" binding:"required,subscription_cycle" enums:"Monthly,Yearly"`
	StartDate dates.Date               `json:"startDate" swaggertype:"string" example:"2024-01-15" binding:"required"`
	Category  string                   `json:"category" binding:"max=100"`
}

// CreateSubscription handles registering a subscription.
// @Summary     Create a subscription
// @Description Register a recurring charge. Its occurrences count against every budget period they fall in.
// @Tags        subscription
// @Accept      json
// @Produce     json
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} models.Subscription "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(services.SubscriptionInput{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Amount:    req.Amount,
		Cycle:     req.Cycle,
		StartDate: req.StartDate.Time,
		Category:  req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(req.OwnerID, models.AuditCreateSubscription, "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "amount": req.Amount.String(), "cycle": req.Cycle})

	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

// GetSubscriptions handles listing the owner's subscriptions.
// @Summary     Get subscriptions
// @Description Get all subscriptions of an owner, newest first
// @Tags        subscription
// @Produce     json
// @Param       ownerId path string true "Owner ID"
// @Success     200 {array}  models.Subscription "Subscriptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscription/{ownerId} [get]
func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	ownerID, err := pathParam(c, "ownerId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	subs, err := h.subscriptionService.GetOwnerSubscriptions(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

// DeleteSubscription handles deleting a subscription.
// @Summary     Delete a subscription
// @Description Delete a subscription. Its charges disappear from every ledger view.
// @Tags        subscription
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} map[string]string "Subscription deleted"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscription/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := pathParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subscriptionService.DeleteSubscription(subscriptionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sub.OwnerID, models.AuditDeleteSubscription, "subscription", sub.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
