package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Price is the tax-exclusive base price;
// TaxRate is the GST percentage (0, 5, 12, 18 or 28). Stock is not enforced
// non-negative: imported sheets sometimes carry negative adjustments.
type Product struct {
	ID        string
	Name      string
	HSN       string // commodity classification code
	Price     decimal.Decimal
	TaxRate   decimal.Decimal
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
