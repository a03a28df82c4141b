package utils

import "github.com/shopspring/decimal"

// FormatAmount renders a decimal amount with exactly two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatRupees renders an amount with the rupee prefix used on receipts
// and reports.
func FormatRupees(amount decimal.Decimal) string {
	return "Rs " + amount.StringFixed(2)
}
