package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/logger"
	"budgetwise/internal/models"
)

// subscriptionService manages recurring obligations. Subscriptions are never
// turned into expense rows; their charges are expanded when read.
type subscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(db *gorm.DB) SubscriptionServicer {
	return &subscriptionService{db: db}
}

// CreateSubscription registers a subscription for an owner.
func (s *subscriptionService) CreateSubscription(in SubscriptionInput) (*models.Subscription, error) {
	switch {
	case in.OwnerID == "":
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "ownerId is required")
	case strings.TrimSpace(in.Name) == "":
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	case in.Amount.IsNegative():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	case !isCents(in.Amount):
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most 2 decimal places")
	case !in.Cycle.Valid():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cycle must be Monthly or Yearly")
	case in.StartDate.IsZero():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "startDate is required")
	}

	sub := &models.Subscription{
		OwnerID:   in.OwnerID,
		Name:      strings.TrimSpace(in.Name),
		Amount:    in.Amount,
		Cycle:     in.Cycle,
		StartDate: in.StartDate,
		Category:  strings.TrimSpace(in.Category),
	}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.ForOwner(in.OwnerID).Infow("subscription created", "subscription_id", sub.ID, "cycle", sub.Cycle)
	return sub, nil
}

// GetOwnerSubscriptions lists an owner's subscriptions, newest first.
func (s *subscriptionService) GetOwnerSubscriptions(ownerID string) ([]models.Subscription, error) {
	subscriptions, err := loadSubscriptions(s.db, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if subscriptions == nil {
		subscriptions = []models.Subscription{}
	}
	return subscriptions, nil
}

// DeleteSubscription removes a subscription and returns it.
func (s *subscriptionService) DeleteSubscription(subscriptionID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.Where("id = ?", subscriptionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&sub).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.ForOwner(sub.OwnerID).Infow("subscription deleted", "subscription_id", sub.ID)
	return &sub, nil
}
