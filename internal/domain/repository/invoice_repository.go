package repository

import "github.com/gopidistributors/billing-api/internal/domain/entity"

// InvoiceRepository defines the persistence port for Invoice and its items.
// Invoices are created once and never mutated.
type InvoiceRepository interface {
	// LastSeq returns the numeric identity of the most recently persisted
	// invoice, or 0 when none exists. Used to derive the next display number.
	LastSeq() (int64, error)
	// Create persists the header and assigns invoice.Seq from the store.
	Create(invoice *entity.Invoice) error
	// CreateItems persists the ordered line items for invoice.Seq.
	CreateItems(items []entity.InvoiceItem) error
	GetBySeq(seq int64) (*entity.Invoice, error)
	GetItemsBySeq(seq int64) ([]entity.InvoiceItem, error)
	// ListRecent lists headers newest-first, optionally filtered by a
	// case-insensitive party-name substring.
	ListRecent(partyName string, limit, offset int) ([]*entity.Invoice, error)
}
