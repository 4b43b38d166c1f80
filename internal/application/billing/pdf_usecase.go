package billing

import (
	"context"
	"fmt"

	"github.com/gopidistributors/billing-api/internal/domain"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

// PDFUseCase regenerates the printable document for a stored invoice.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	partyRepo   repository.PartyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	partyRepo repository.PartyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF loads the invoice aggregate and renders it.
//
// Returns:
//   - (pdfBytes, filename, nil)  on success.
//   - domain.ErrNotFound         when the invoice does not exist.
//
// A deleted party is not an error: the renderer uses the invoice's
// denormalized party name and marks the registration as unknown.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, seq int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetBySeq(seq)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsBySeq(seq)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice items: %w", err)
	}
	inv.Items = items

	// Party may be gone; the invoice carries everything the document needs.
	party, err := uc.partyRepo.GetByID(inv.PartyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load party: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, party)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, inv.Number + ".pdf", nil
}
