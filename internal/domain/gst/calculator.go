// Package gst implements the tax split for domestic sales: a sale crossing
// state lines carries the whole tax as IGST, a sale within the seller's state
// splits it into equal CGST and SGST halves.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)
var two = decimal.NewFromInt(2)

// Rates is the set of legal GST percentages.
var Rates = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// IsValidRate reports whether rate is one of the legal GST percentages.
func IsValidRate(rate decimal.Decimal) bool {
	for _, r := range Rates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}

// Breakdown is the tax split for one invoice line.
type Breakdown struct {
	TotalBase   decimal.Decimal
	CGSTAmount  decimal.Decimal
	SGSTAmount  decimal.Decimal
	IGSTAmount  decimal.Decimal
	TotalTax    decimal.Decimal
	FinalAmount decimal.Decimal
	InterState  bool
}

// Compute derives the tax breakdown for a line. Pure and deterministic.
//
// The jurisdiction comparison is case-insensitive string equality between the
// seller's home state and the buyer's state. Intra-state tax is split by two
// independent divisions; no odd-unit correction is applied to the halves.
func Compute(basePrice decimal.Decimal, quantity int64, ratePercent decimal.Decimal, originState, destinationState string) Breakdown {
	totalBase := basePrice.Mul(decimal.NewFromInt(quantity))
	totalTax := totalBase.Mul(ratePercent.Div(hundred))
	interState := !strings.EqualFold(originState, destinationState)

	b := Breakdown{
		TotalBase:   totalBase,
		CGSTAmount:  decimal.Zero,
		SGSTAmount:  decimal.Zero,
		IGSTAmount:  decimal.Zero,
		TotalTax:    totalTax,
		FinalAmount: totalBase.Add(totalTax),
		InterState:  interState,
	}
	if interState {
		b.IGSTAmount = totalTax
	} else {
		b.CGSTAmount = totalTax.Div(two)
		b.SGSTAmount = totalTax.Div(two)
	}
	return b
}
