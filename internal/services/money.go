package services

import "github.com/shopspring/decimal"

// isCents reports whether d fits a numeric(14,2) column without rounding.
// The expense row and the balance update would otherwise round apart.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
