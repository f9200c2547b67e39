package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetwise/internal/dates"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ledger"
	"budgetwise/internal/lifecycle"
	"budgetwise/internal/logger"
	"budgetwise/internal/metrics"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
)

// budgetService handles the budget lifecycle.
type budgetService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db, now: dates.Now}
}

func validateBudgetInput(in BudgetInput) error {
	switch {
	case in.OwnerID == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "ownerId is required")
	case !in.TotalAmount.IsPositive():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "totalAmount must be greater than zero")
	case !isCents(in.TotalAmount) || !isCents(in.SavingsTarget):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts must have at most 2 decimal places")
	case in.SavingsTarget.IsNegative():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "savingsTarget cannot be negative")
	case in.SavingsTarget.GreaterThan(in.TotalAmount):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "savingsTarget cannot exceed totalAmount")
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "startDate and endDate are required")
	case !in.EndDate.After(in.StartDate):
		return apperrors.ErrInvalidBudgetDates
	}
	return nil
}

// CreateBudget starts a new period. An active budget is archived first.
func (s *budgetService) CreateBudget(in BudgetInput) (*models.Budget, error) {
	if err := validateBudgetInput(in); err != nil {
		return nil, err
	}
	return s.rollover(in, false)
}

// ReplaceBudget archives the active budget and starts a new period.
func (s *budgetService) ReplaceBudget(in BudgetInput) (*models.Budget, error) {
	if err := validateBudgetInput(in); err != nil {
		return nil, err
	}
	return s.rollover(in, true)
}

// rollover archives the owner's active budget (if any) and creates the new
// one in a single transaction: history row, expense purge, version-guarded
// delete of the old budget, insert of the new one. Nothing is kept when any
// step fails.
func (s *budgetService) rollover(in BudgetInput, requireActive bool) (*models.Budget, error) {
	log := logger.ForOwner(in.OwnerID)

	var created *models.Budget
	var history *models.BudgetHistory

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var old models.Budget
		err := tx.Where("owner_id = ?", in.OwnerID).First(&old).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if requireActive {
				return apperrors.ErrNoActiveBudget
			}
		case err != nil:
			return err
		default:
			expenses, subscriptions, err := loadLedger(tx, &old)
			if err != nil {
				return err
			}

			history = lifecycle.Archive(&old, expenses, subscriptions, s.now())
			if err := tx.Create(history).Error; err != nil {
				return err
			}

			if err := tx.Where("owner_id = ?", in.OwnerID).Delete(&models.Expense{}).Error; err != nil {
				return err
			}

			res := tx.Where("id = ? AND version = ?", old.ID, old.Version).Delete(&models.Budget{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrBudgetConflict
			}
		}

		created = &models.Budget{
			OwnerID:       in.OwnerID,
			TotalAmount:   in.TotalAmount,
			CurrentAmount: in.TotalAmount,
			SavingsTarget: in.SavingsTarget,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			Version:       1,
		}
		return tx.Create(created).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			log.Warnw("budget rollover rejected", "code", appErr.Code)
			return nil, appErr
		}
		log.Errorw("budget rollover failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrRolloverFailed, err)
	}

	if history != nil {
		achievement := "none"
		if history.Achievement != nil {
			achievement = string(*history.Achievement)
		}
		metrics.Rollovers.WithLabelValues(achievement).Inc()
		log.Infow("budget archived",
			"budget_id", history.BudgetID,
			"history_id", history.ID,
			"entries", len(history.Entries),
			"achievement", achievement,
		)
	}
	log.Infow("budget created", "budget_id", created.ID, "total_amount", created.TotalAmount.String())

	return created, nil
}

// GetActiveBudget returns the owner's active budget.
func (s *budgetService) GetActiveBudget(ownerID string) (*models.Budget, error) {
	return findActiveBudget(s.db, ownerID)
}

// GetBudgetOverview returns the active budget with the subscription charges
// of its whole period deducted from the balance.
func (s *budgetService) GetBudgetOverview(ownerID string) (*BudgetOverview, error) {
	budget, err := findActiveBudget(s.db, ownerID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := loadSubscriptions(s.db, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	charges := decimal.Zero
	for _, e := range ledger.Virtual(subscriptions, budget.StartDate, budget.EndDate) {
		charges = charges.Add(e.Amount)
	}

	return &BudgetOverview{
		Budget:                budget,
		SpendableBudget:       budget.SpendableBudget(),
		SubscriptionCharges:   charges,
		AdjustedCurrentAmount: budget.CurrentAmount.Sub(charges),
	}, nil
}

// GetBudgetHistory returns the owner's archived budgets, newest first.
func (s *budgetService) GetBudgetHistory(ownerID string, page pagination.PageRequest) (*pagination.PageResponse[models.BudgetHistory], error) {
	page.Defaults()

	base := s.db.Model(&models.BudgetHistory{}).Where("owner_id = ?", ownerID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var histories []models.BudgetHistory
	if err := base.Order("archived_date DESC").Scopes(pagination.Paginate(page)).Find(&histories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(histories, page.Page, page.PageSize, totalItems)
	return &result, nil
}
