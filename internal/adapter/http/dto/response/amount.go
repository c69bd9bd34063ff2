package response

import "github.com/shopspring/decimal"

// formatAmount renders minor units as a two-decimal major-unit string, e.g. 1170 -> "11.70".
func formatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
