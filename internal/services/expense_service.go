package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"budgetwise/internal/dates"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ledger"
	"budgetwise/internal/logger"
	"budgetwise/internal/metrics"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
)

// expenseService records expenses and keeps the budget balance in lockstep.
type expenseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: dates.Now}
}

func validateExpenseInput(in ExpenseInput) error {
	switch {
	case in.OwnerID == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "ownerId is required")
	case strings.TrimSpace(in.Name) == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	case strings.TrimSpace(in.Category) == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	case !in.Amount.IsPositive():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	case !isCents(in.Amount):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most 2 decimal places")
	}
	return nil
}

// AddExpense records an expense against the owner's active budget. The
// balance is decremented with a single guarded update, so two concurrent
// expenses can never both spend the same money. The expense must be dated
// within the budget period; without a date it is booked today, or on the
// period's last day once the period is over.
func (s *expenseService) AddExpense(in ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(in); err != nil {
		return nil, err
	}

	var expense *models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.Where("owner_id = ?", in.OwnerID).First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithStatus(apperrors.ErrNoActiveBudget, http.StatusBadRequest)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		date, err := s.expenseDate(in.Date, &budget)
		if err != nil {
			return err
		}

		res := tx.Model(&models.Budget{}).
			Where("id = ? AND current_amount >= ?", budget.ID, in.Amount).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount - ?", in.Amount),
				"version":        gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Budget{}).Where("id = ?", budget.ID).Count(&count).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count == 0 {
				return apperrors.ErrBudgetVanished
			}
			return apperrors.ErrInsufficientBudget
		}

		expense = &models.Expense{
			OwnerID:     in.OwnerID,
			BudgetID:    budget.ID,
			Category:    strings.TrimSpace(in.Category),
			Name:        strings.TrimSpace(in.Name),
			Amount:      in.Amount,
			Date:        date,
			Description: in.Description,
			Mood:        in.Mood,
			IsHighValue: in.IsHighValue,
		}
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			metrics.ExpenseRejections.WithLabelValues(appErr.Code).Inc()
		}
		return nil, err
	}

	logger.ForOwner(in.OwnerID).Infow("expense recorded",
		"expense_id", expense.ID,
		"budget_id", expense.BudgetID,
		"amount", expense.Amount.String(),
	)
	return expense, nil
}

// expenseDate settles the booking date of an expense against budget's period.
func (s *expenseService) expenseDate(requested time.Time, budget *models.Budget) (time.Time, error) {
	if requested.IsZero() {
		return dates.ClampToPeriod(s.now(), budget.StartDate, budget.EndDate), nil
	}
	date := dates.Civil(requested)
	if !dates.Within(date, budget.StartDate, budget.EndDate) {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("date must fall within the budget period %s to %s",
				dates.ISO(budget.StartDate), dates.ISO(budget.EndDate)))
	}
	return date, nil
}

// DeleteExpense removes an expense and gives its amount back to the budget,
// whatever the balance currently is.
func (s *expenseService) DeleteExpense(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", expenseID).First(&expense).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrExpenseNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(&expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		res := tx.Model(&models.Budget{}).
			Where("id = ?", expense.BudgetID).
			Updates(map[string]interface{}{
				"current_amount": gorm.Expr("current_amount + ?", expense.Amount),
				"version":        gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrBudgetVanished
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.ForOwner(expense.OwnerID).Infow("expense deleted",
		"expense_id", expense.ID,
		"budget_id", expense.BudgetID,
		"amount", expense.Amount.String(),
	)
	return &expense, nil
}

// ListExpenses returns a page of recorded expenses, newest first, with the
// active period's subscription charges appended. Totals count recorded
// expenses only.
func (s *expenseService) ListExpenses(ownerID string, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error) {
	page.Defaults()

	budget, err := findActiveBudget(s.db, ownerID)
	if err != nil && !errors.Is(err, apperrors.ErrNoActiveBudget) {
		return nil, err
	}

	base := s.db.Model(&models.Expense{}).Where("owner_id = ?", ownerID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]ledger.Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, ledger.FromExpense(e))
	}

	if budget != nil {
		subscriptions, err := loadSubscriptions(s.db, ownerID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entries = append(entries, ledger.Virtual(subscriptions, budget.StartDate, budget.EndDate)...)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// summary aggregates the active period's unified ledger.
func (s *expenseService) summary(ownerID string) (ledger.Summary, error) {
	budget, err := findActiveBudget(s.db, ownerID)
	if err != nil {
		return ledger.Summary{}, err
	}
	expenses, subscriptions, err := loadLedger(s.db, budget)
	if err != nil {
		return ledger.Summary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ledger.Aggregate(expenses, subscriptions, budget.StartDate, budget.EndDate), nil
}

// GetCategoryPercentages returns each category's share of the period's spending.
func (s *expenseService) GetCategoryPercentages(ownerID string) ([]ledger.CategoryShare, error) {
	summary, err := s.summary(ownerID)
	if err != nil {
		return nil, err
	}
	return ledger.CategoryShares(summary), nil
}

// GetDailyExpenses returns the period's spending per day, oldest first.
func (s *expenseService) GetDailyExpenses(ownerID string) ([]ledger.DayTotal, error) {
	summary, err := s.summary(ownerID)
	if err != nil {
		return nil, err
	}
	return summary.ByDay, nil
}
