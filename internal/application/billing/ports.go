package billing

import (
	"context"

	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

// BillingTxRunner executes fn inside one transaction. The invoice header and
// its items are persisted together: both land or neither does.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// SellerInfo is the letterhead identity of the issuing company. State is the
// origin jurisdiction for every sale.
type SellerInfo struct {
	Name    string
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
	GSTIN   string
}

// InvoicePDFGenerator renders the printable document for a finished invoice.
// party may be nil when the referenced party has since been deleted; the
// renderer then falls back to the invoice's denormalized party name.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, party *entity.Party) ([]byte, error)
}
