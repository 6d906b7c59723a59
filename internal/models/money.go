package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var centsPerDollar = decimal.NewFromInt(100)

// CentsFromDollars converts a dollar amount submitted as a JSON number
// to integer cents, rounding to the nearest cent half away from zero.
// Negative amounts are allowed and subtract from the running total.
func CentsFromDollars(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(centsPerDollar).Round(0).IntPart()
}

// FormatCents renders integer cents in the display form $D.CC with the
// cents zero-padded to two digits. Negative values put the sign before
// the dollar sign, e.g. -$1.50.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
