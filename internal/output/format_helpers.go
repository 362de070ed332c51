package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rvo/rentvsown-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal rate (e.g. 0.0625) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
