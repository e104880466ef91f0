// Package currency formats monetary amounts for display on the storefront.
package currency

import (
	"github.com/shopspring/decimal"
)

// SymbolFormatter renders amounts with a fixed currency symbol and a fixed
// number of decimal places, e.g. "$9.99". Negative amounts keep the sign
// between the symbol and the digits the way most storefronts display
// discounts: "$-5.00".
type SymbolFormatter struct {
	symbol string
	places int32
}

// NewSymbolFormatter builds a formatter for the given symbol. places is the
// number of decimal digits, typically 2.
func NewSymbolFormatter(symbol string, places int32) *SymbolFormatter {
	return &SymbolFormatter{symbol: symbol, places: places}
}

// Format renders the amount rounded to the configured precision.
func (f *SymbolFormatter) Format(amount decimal.Decimal) string {
	return f.symbol + amount.StringFixed(f.places)
}
