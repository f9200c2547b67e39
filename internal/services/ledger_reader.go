package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// findActiveBudget returns the owner's active budget or ErrNoActiveBudget.
func findActiveBudget(db *gorm.DB, ownerID string) (*models.Budget, error) {
	var budget models.Budget
	if err := db.Where("owner_id = ?", ownerID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveBudget
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// loadLedger reads the expenses recorded against budget and the owner's
// subscriptions.
func loadLedger(db *gorm.DB, budget *models.Budget) ([]models.Expense, []models.Subscription, error) {
	var expenses []models.Expense
	if err := db.Where("budget_id = ?", budget.ID).Order("date ASC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, nil, err
	}
	subscriptions, err := loadSubscriptions(db, budget.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	return expenses, subscriptions, nil
}

func loadSubscriptions(db *gorm.DB, ownerID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}
