package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/forecast"
	"budgetwise/internal/ledger"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
)

// BudgetInput is the requested shape of a new budget period.
type BudgetInput struct {
	OwnerID       string
	TotalAmount   decimal.Decimal
	SavingsTarget decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
}

// BudgetOverview is the active budget with its subscription-adjusted balance.
type BudgetOverview struct {
	Budget                *models.Budget  `json:"budget"`
	SpendableBudget       decimal.Decimal `json:"spendableBudget"`
	SubscriptionCharges   decimal.Decimal `json:"subscriptionCharges"`
	AdjustedCurrentAmount decimal.Decimal `json:"adjustedCurrentAmount"`
}

// BudgetServicer defines the contract for the budget lifecycle.
type BudgetServicer interface {
	// CreateBudget starts a new period, archiving the active one if any.
	CreateBudget(in BudgetInput) (*models.Budget, error)
	// ReplaceBudget archives the active budget and starts a new period.
	// It fails with ErrNoActiveBudget when there is nothing to replace.
	ReplaceBudget(in BudgetInput) (*models.Budget, error)
	GetActiveBudget(ownerID string) (*models.Budget, error)
	GetBudgetOverview(ownerID string) (*BudgetOverview, error)
	GetBudgetHistory(ownerID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetHistory], error)
}

// ExpenseInput is a new expense as requested by the client.
type ExpenseInput struct {
	OwnerID     string
	Category    string
	Name        string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Mood        string
	IsHighValue bool
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	AddExpense(in ExpenseInput) (*models.Expense, error)
	// DeleteExpense removes the expense and returns its amount to the budget.
	DeleteExpense(expenseID string) (*models.Expense, error)
	ListExpenses(ownerID string, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error)
	GetCategoryPercentages(ownerID string) ([]ledger.CategoryShare, error)
	GetDailyExpenses(ownerID string) ([]ledger.DayTotal, error)
}

// SubscriptionInput is a new subscription as requested by the client.
type SubscriptionInput struct {
	OwnerID   string
	Name      string
	Amount    decimal.Decimal
	Cycle     models.SubscriptionCycle
	StartDate time.Time
	Category  string
}

// SubscriptionServicer defines the contract for subscription management.
type SubscriptionServicer interface {
	CreateSubscription(in SubscriptionInput) (*models.Subscription, error)
	GetOwnerSubscriptions(ownerID string) ([]models.Subscription, error)
	DeleteSubscription(subscriptionID string) (*models.Subscription, error)
}

// Advice is the advisor response. When the generator cannot answer,
// Available is false and Message explains why.
type Advice struct {
	Available bool   `json:"available"`
	Advice    string `json:"advice,omitempty"`
	Message   string `json:"message,omitempty"`
	Code      string `json:"code,omitempty"`
	Cached    bool   `json:"cached"`
}

// AdvisorServicer defines the contract for forecasts and advice.
type AdvisorServicer interface {
	GetForecast(ownerID string) (*forecast.Result, error)
	GetAdvice(ctx context.Context, ownerID string) (*Advice, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ownerID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
