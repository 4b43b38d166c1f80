// Package catalog maps spreadsheet rows with unpredictable column headers
// into product records. Distributor price lists come from many suppliers and
// never agree on header names, so each target field carries an ordered list
// of accepted synonyms.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// unknownName is the sentinel assigned when no name column resolves.
// Rows carrying it are dropped from the batch.
const unknownName = "Unknown"

// Header synonyms per field, in resolution order. Earlier entries win:
// a sheet with both "Rate" and "Price" columns resolves price from "Rate".
var (
	nameHeaders  = []string{"Item Name", "Product", "Name", "Product Name"}
	hsnHeaders   = []string{"HSN", "HSN Code"}
	priceHeaders = []string{"Rate", "Price", "Base Price", "Ptr", "MRP"}
	taxHeaders   = []string{"GST", "Tax", "Tax Rate"}
	stockHeaders = []string{"Stock", "Qty", "Quantity"}
)

// Record is a normalized, product-shaped row ready for persistence.
type Record struct {
	Name    string
	HSN     string
	Price   decimal.Decimal
	TaxRate decimal.Decimal
	Stock   int64
}

// NormalizeRow maps one raw row into a Record. ok is false when the row has
// no recognizable name column; such rows are unparseable and must be dropped.
// Missing or unparseable numeric fields default to zero.
func NormalizeRow(row map[string]string) (Record, bool) {
	name := lookup(row, nameHeaders)
	if strings.TrimSpace(name) == "" {
		name = unknownName
	}
	if name == unknownName {
		return Record{}, false
	}

	return Record{
		Name:    strings.TrimSpace(name),
		HSN:     strings.TrimSpace(lookup(row, hsnHeaders)),
		Price:   parseDecimal(lookup(row, priceHeaders)),
		TaxRate: parseDecimal(lookup(row, taxHeaders)),
		Stock:   parseDecimal(lookup(row, stockHeaders)).IntPart(),
	}, true
}

// lookup resolves a field through its synonym list: for each synonym, first
// an exact key match, then a case-insensitive scan over the row's keys. The
// first hit in synonym order wins.
func lookup(row map[string]string, synonyms []string) string {
	for _, syn := range synonyms {
		if v, ok := row[syn]; ok {
			return v
		}
		for k, v := range row {
			if strings.EqualFold(k, syn) {
				return v
			}
		}
	}
	return ""
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
