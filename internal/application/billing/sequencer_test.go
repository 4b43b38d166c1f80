package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopidistributors/billing-api/internal/application/billing"
)

// TestNextNumber_FirstInvoice verifies the series starts at INV-00001 when
// nothing has been billed yet.
func TestNextNumber_FirstInvoice(t *testing.T) {
	assert.Equal(t, "INV-00001", billing.NextNumber(0))
}

// TestNextNumber_Increments verifies the display number always follows the
// last persisted identity.
func TestNextNumber_Increments(t *testing.T) {
	assert.Equal(t, "INV-00008", billing.NextNumber(7))
	assert.Equal(t, "INV-01000", billing.NextNumber(999))
}

// TestNextNumber_PastPaddingWidth verifies numbers beyond five digits keep
// growing instead of wrapping or truncating.
func TestNextNumber_PastPaddingWidth(t *testing.T) {
	assert.Equal(t, "INV-123457", billing.NextNumber(123456))
}
