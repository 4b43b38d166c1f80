package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gopidistributors/billing-api/internal/domain/gst"
)

// TestCompute_IntraState verifies the reference case: 2 units at ₹100 with
// 18% GST inside the seller's own state split into equal CGST/SGST halves.
func TestCompute_IntraState(t *testing.T) {
	b := gst.Compute(decimal.NewFromInt(100), 2, decimal.NewFromInt(18), "Gujarat", "Gujarat")

	assert.False(t, b.InterState)
	assert.True(t, b.TotalBase.Equal(decimal.NewFromInt(200)), "base = 100 × 2")
	assert.True(t, b.TotalTax.Equal(decimal.NewFromInt(36)), "tax = 200 at 18 percent")
	assert.True(t, b.CGSTAmount.Equal(decimal.NewFromInt(18)))
	assert.True(t, b.SGSTAmount.Equal(decimal.NewFromInt(18)))
	assert.True(t, b.IGSTAmount.IsZero(), "no IGST on an intra-state sale")
	assert.True(t, b.FinalAmount.Equal(decimal.NewFromInt(236)))
}

// TestCompute_InterState verifies that crossing state lines moves the whole
// tax into IGST and leaves both halves empty.
func TestCompute_InterState(t *testing.T) {
	b := gst.Compute(decimal.NewFromInt(100), 2, decimal.NewFromInt(18), "Gujarat", "Maharashtra")

	assert.True(t, b.InterState)
	assert.True(t, b.IGSTAmount.Equal(decimal.NewFromInt(36)), "full tax as IGST")
	assert.True(t, b.CGSTAmount.IsZero())
	assert.True(t, b.SGSTAmount.IsZero())
	assert.True(t, b.FinalAmount.Equal(decimal.NewFromInt(236)))
}

// TestCompute_StateComparisonIgnoresCase verifies the jurisdiction match is
// case-insensitive: "gujarat" and "GUJARAT" are the same state.
func TestCompute_StateComparisonIgnoresCase(t *testing.T) {
	b := gst.Compute(decimal.NewFromInt(50), 1, decimal.NewFromInt(12), "Gujarat", "gUJARAT")

	assert.False(t, b.InterState, "same state spelled differently must stay intra-state")
	assert.True(t, b.IGSTAmount.IsZero())
}

// TestCompute_HalvesAlwaysEqual verifies CGST and SGST come out identical for
// any legal rate, including amounts whose tax does not split into round paise.
func TestCompute_HalvesAlwaysEqual(t *testing.T) {
	for _, rate := range gst.Rates {
		b := gst.Compute(decimal.RequireFromString("33.33"), 3, rate, "Gujarat", "Gujarat")

		assert.True(t, b.CGSTAmount.Equal(b.SGSTAmount),
			"CGST and SGST must be equal at rate %s", rate)
		assert.True(t, b.CGSTAmount.Add(b.SGSTAmount).Equal(b.TotalTax),
			"halves must rebuild the total tax at rate %s", rate)
	}
}

// TestCompute_ZeroRate verifies exempt goods produce no tax in either regime.
func TestCompute_ZeroRate(t *testing.T) {
	intra := gst.Compute(decimal.NewFromInt(500), 4, decimal.Zero, "Gujarat", "Gujarat")
	inter := gst.Compute(decimal.NewFromInt(500), 4, decimal.Zero, "Gujarat", "Kerala")

	for _, b := range []gst.Breakdown{intra, inter} {
		assert.True(t, b.TotalTax.IsZero())
		assert.True(t, b.FinalAmount.Equal(b.TotalBase), "exempt sale: final = base")
	}
}

// TestCompute_TotalsLaw verifies final = base + tax holds for a fractional
// price and quantity combination.
func TestCompute_TotalsLaw(t *testing.T) {
	b := gst.Compute(decimal.RequireFromString("12.75"), 7, decimal.NewFromInt(28), "Gujarat", "Punjab")

	assert.True(t, b.FinalAmount.Equal(b.TotalBase.Add(b.TotalTax)))
	assert.True(t, b.TotalBase.Equal(decimal.RequireFromString("89.25")))
}

func TestIsValidRate(t *testing.T) {
	assert.True(t, gst.IsValidRate(decimal.NewFromInt(18)))
	assert.True(t, gst.IsValidRate(decimal.Zero))
	assert.False(t, gst.IsValidRate(decimal.NewFromInt(15)), "15 is not a GST slab")
	assert.False(t, gst.IsValidRate(decimal.NewFromInt(-5)))
}

func TestIsState(t *testing.T) {
	assert.True(t, gst.IsState("Gujarat"))
	assert.True(t, gst.IsState("tamil nadu"), "state match is case-insensitive")
	assert.False(t, gst.IsState("Atlantis"))
	assert.False(t, gst.IsState(""))
}

func TestNormalizeGSTIN(t *testing.T) {
	assert.Equal(t, "24ABCDE1234F1Z5", gst.NormalizeGSTIN("  24abcde1234f1z5  "))
	assert.Equal(t, "24ABCDE1234F1Z5", gst.NormalizeGSTIN("24ABCDE1234F1Z5EXTRA"),
		"anything past 15 characters is truncated")
	assert.Equal(t, "", gst.NormalizeGSTIN("   "))
}
