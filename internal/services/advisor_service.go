package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"budgetwise/internal/advisor"
	"budgetwise/internal/dates"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/forecast"
	"budgetwise/internal/ledger"
	"budgetwise/internal/logger"
	"budgetwise/internal/metrics"
)

// advisorService serves forecasts and collaborator-generated advice.
type advisorService struct {
	db        *gorm.DB
	generator advisor.Generator
	cache     advisor.Cache
	timeout   time.Duration
	now       func() time.Time
}

// NewAdvisorService creates a new AdvisorServicer. generator and cache may
// be nil; advice is then reported unavailable or not cached.
func NewAdvisorService(db *gorm.DB, generator advisor.Generator, cache advisor.Cache, timeout time.Duration) AdvisorServicer {
	return &advisorService{
		db:        db,
		generator: generator,
		cache:     cache,
		timeout:   timeout,
		now:       dates.Now,
	}
}

// GetForecast forecasts the owner's active period. Owners without a budget
// get the no-budget forecast, not an error.
func (s *advisorService) GetForecast(ownerID string) (*forecast.Result, error) {
	budget, err := findActiveBudget(s.db, ownerID)
	if errors.Is(err, apperrors.ErrNoActiveBudget) {
		result := forecast.NoBudget()
		return &result, nil
	}
	if err != nil {
		return nil, err
	}

	expenses, subscriptions, err := loadLedger(s.db, budget)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := forecast.Forecast(budget, expenses, subscriptions, s.now())
	return &result, nil
}

func unavailableAdvice() *Advice {
	metrics.AdviceOutcomes.WithLabelValues("unavailable").Inc()
	return &Advice{
		Available: false,
		Message:   apperrors.ErrAdviceUnavailable.Message,
		Code:      apperrors.ErrAdviceUnavailable.Code,
	}
}

// GetAdvice asks the generator about the owner's active period. A ledger
// read failure is an error; a missing, failing or slow generator only makes
// the advice unavailable.
func (s *advisorService) GetAdvice(ctx context.Context, ownerID string) (*Advice, error) {
	log := logger.ForOwner(ownerID)

	budget, err := findActiveBudget(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	expenses, subscriptions, err := loadLedger(s.db, budget)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	key := advisor.Key(budget, subscriptions)
	if s.cache != nil {
		text, found, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warnw("advice cache read failed", "error", err, "key", key)
		} else if found {
			metrics.AdviceOutcomes.WithLabelValues("cached").Inc()
			return &Advice{Available: true, Advice: text, Cached: true}, nil
		}
	}

	if s.generator == nil || !s.generator.IsAvailable() {
		log.Debugw("advice generator not configured")
		return unavailableAdvice(), nil
	}

	summary := ledger.Aggregate(expenses, subscriptions, budget.StartDate, budget.EndDate)
	fc := forecast.Forecast(budget, expenses, subscriptions, s.now())
	prompt := advisor.NewPrompt(budget, summary, subscriptions, fc)

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		log.Errorw("advice generation failed", "error", err, "budget_id", budget.ID)
		return unavailableAdvice(), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text); err != nil {
			log.Warnw("advice cache write failed", "error", err, "key", key)
		}
	}

	metrics.AdviceOutcomes.WithLabelValues("generated").Inc()
	return &Advice{Available: true, Advice: text}, nil
}
