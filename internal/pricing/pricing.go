// Package pricing applies the register tax policy to cart subtotals.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat 12% rate applied to every subtotal.
var DefaultTaxRate = decimal.RequireFromString("0.12")

// DefaultCurrencySymbol prefixes formatted amounts.
const DefaultCurrencySymbol = "₱"

// ErrNegativeRate is returned for tax rates below zero.
var ErrNegativeRate = errors.New("tax rate must not be negative")

// TaxPolicy is a single flat rate fixed for the lifetime of a register.
type TaxPolicy struct {
	rate decimal.Decimal
}

// NewTaxPolicy validates rate and returns a policy.
func NewTaxPolicy(rate decimal.Decimal) (TaxPolicy, error) {
	if rate.IsNegative() {
		return TaxPolicy{}, fmt.Errorf("%w: %s", ErrNegativeRate, rate)
	}
	return TaxPolicy{rate: rate}, nil
}

// DefaultTaxPolicy returns the 12% policy.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{rate: DefaultTaxRate}
}

// Rate returns the configured rate.
func (p TaxPolicy) Rate() decimal.Decimal {
	return p.rate
}

// Tax returns subtotal * rate without rounding.
func (p TaxPolicy) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.rate)
}

// Summarize derives tax and total from subtotal.
func (p TaxPolicy) Summarize(subtotal decimal.Decimal) Summary {
	tax := p.Tax(subtotal)
	return Summary{
		Subtotal: subtotal,
		TaxRate:  p.rate,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Summary holds the derived totals of a cart at one point in time.
//
// @Description Cart totals
// @Example {"subtotal": "4.5", "tax_rate": "0.12", "tax": "0.54", "total": "5.04"}
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"4.5"`
	TaxRate  decimal.Decimal `json:"tax_rate" swaggertype:"string" example:"0.12"`
	Tax      decimal.Decimal `json:"tax" swaggertype:"string" example:"0.54"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"5.04"`
}

// FormatMoney renders amount with two decimals behind symbol, e.g. "₱5.04".
// Rounding happens here only.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// Formatter renders amounts with a fixed currency symbol.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a formatter, falling back to DefaultCurrencySymbol.
func NewFormatter(symbol string) Formatter {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return Formatter{Symbol: symbol}
}

// Format renders amount with the formatter symbol.
func (f Formatter) Format(amount decimal.Decimal) string {
	return FormatMoney(f.Symbol, amount)
}
