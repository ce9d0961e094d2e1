package utils

import (
	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount the way the app displays balances, e.g.
// "R$ 150.00". Amounts are always shown with two decimal places.
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}
