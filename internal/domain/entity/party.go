package entity

import "time"

// Party represents a customer or supplier. State is the buyer's jurisdiction
// used for the inter/intra-state tax decision. GSTIN is optional and only
// length-normalized, never checksummed. A Party may be deleted even when past
// invoices reference it; invoices keep a denormalized copy of the name.
type Party struct {
	ID        string
	Name      string
	GSTIN     string
	Mobile    string
	Address   string
	State     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
