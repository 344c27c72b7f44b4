package currency

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var centsFactor = decimal.NewFromInt(100)

// CentsToDecimal converts an amount in minor units (cents) to a decimal
// dollar amount.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsFactor)
}

// DollarsToCents converts a dollar amount to minor units using banker's
// rounding, matching how the payment processor expects amounts.
func DollarsToCents(dollars float64) int64 {
	cents := dollars * 100
	rounded := math.Round(cents)

	if math.Abs(cents-rounded) == 0.5 {
		if int64(rounded)%2 == 0 {
			return int64(rounded)
		}
		return int64(rounded) - 1
	}

	return int64(rounded)
}

// FormatUSD formats a decimal dollar amount for display.
func FormatUSD(amount decimal.Decimal) string {
	return fmt.Sprintf("$%s", amount.StringFixed(2))
}
