// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, dates.Date{})
	_ = v.RegisterValidation("subscription_cycle", validateSubscriptionCycle)
}

// decimalValue lets numeric tags (gt, gte, lte) apply to money fields.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// dateValue lets "required" reject a missing date.
func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(dates.Date); ok {
		if d.IsZero() {
			return nil
		}
		return d.Time
	}
	return nil
}

func validateSubscriptionCycle(fl validator.FieldLevel) bool {
	return models.SubscriptionCycle(fl.Field().String()).Valid()
}
