package utils

import "github.com/shopspring/decimal"

// FormatAmount renders an amount with the store currency sigil, e.g. "P116.00".
func FormatAmount(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}
