// Package errors provides custom error types for the budgetwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so wrapped copies compare equal to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithStatus creates a copy of sentinel reported with a different HTTP status.
func WithStatus(sentinel *AppError, status int) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: status,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Budget errors.
var (
	ErrNoActiveBudget     = &AppError{Code: "NO_ACTIVE_BUDGET", Message: "No active budget found", StatusCode: http.StatusNotFound}
	ErrBudgetVanished     = &AppError{Code: "BUDGET_VANISHED", Message: "Budget was removed while the operation was in progress", StatusCode: http.StatusConflict}
	ErrBudgetConflict     = &AppError{Code: "BUDGET_CONFLICT", Message: "Budget was modified concurrently, please retry", StatusCode: http.StatusConflict}
	ErrRolloverFailed     = &AppError{Code: "ROLLOVER_FAILED", Message: "Budget rollover failed and was rolled back", StatusCode: http.StatusInternalServerError}
	ErrInvalidBudgetDates = &AppError{Code: "INVALID_INPUT", Message: "End date must be after start date", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound    = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInsufficientBudget = &AppError{Code: "INSUFFICIENT_BUDGET", Message: "Insufficient budget balance for this expense", StatusCode: http.StatusBadRequest}
)

// Subscription errors.
var (
	ErrSubscriptionNotFound = &AppError{Code: "SUBSCRIPTION_NOT_FOUND", Message: "Subscription not found", StatusCode: http.StatusNotFound}
)

// Advisor errors.
var (
	ErrAdviceUnavailable = &AppError{Code: "ADVICE_UNAVAILABLE", Message: "Advice is temporarily unavailable", StatusCode: http.StatusServiceUnavailable}
)
