package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gopidistributors/billing-api/internal/application/dto"
	"github.com/gopidistributors/billing-api/internal/domain"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/gst"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
	"github.com/gopidistributors/billing-api/pkg/logger"
)

// CreateInvoiceUseCase assembles and persists a sales invoice: it snapshots
// each billed product into a line item, computes the per-line tax split
// against the buyer's state, sums the totals and saves header plus items in
// one transaction. The PDF handoff happens after the commit and is not
// transactional with it; a rendering failure leaves a saved invoice with no
// document, which is reported but never rolled back.
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	pdf         InvoicePDFGenerator
	homeState   string
	log         *logger.Logger
}

// NewCreateInvoiceUseCase builds the use case. homeState is the seller's
// jurisdiction (origin of every sale).
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
	pdf InvoicePDFGenerator,
	homeState string,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		partyRepo:   partyRepo,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		pdf:         pdf,
		homeState:   homeState,
		log:         log,
	}
}

// Create validates the request, assembles the invoice and persists it.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.PartyID == "" {
		return nil, domain.ErrNoPartySelected
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	party, err := uc.partyRepo.GetByID(in.PartyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}

	// Resolve products and build line items (read-only, outside the tx).
	// Items keep their input order; sums are order-independent.
	now := time.Now()
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	subTotal, taxTotal, grandTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for i, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		price := line.UnitPrice
		if price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if price.IsZero() {
			price = product.Price
		}

		b := gst.Compute(price, line.Quantity, product.TaxRate, uc.homeState, party.State)
		items = append(items, entity.InvoiceItem{
			LineNo:      i + 1,
			ProductID:   product.ID,
			Name:        product.Name,
			HSN:         product.HSN,
			Price:       price,
			TaxRate:     product.TaxRate,
			Quantity:    line.Quantity,
			TotalBase:   b.TotalBase,
			CGSTAmount:  b.CGSTAmount,
			SGSTAmount:  b.SGSTAmount,
			IGSTAmount:  b.IGSTAmount,
			TotalTax:    b.TotalTax,
			FinalAmount: b.FinalAmount,
		})
		subTotal = subTotal.Add(b.TotalBase)
		taxTotal = taxTotal.Add(b.TotalTax)
		grandTotal = grandTotal.Add(b.FinalAmount)
	}

	inv := &entity.Invoice{
		Date:       now,
		PartyID:    party.ID,
		PartyName:  party.Name,
		Items:      items,
		SubTotal:   subTotal,
		TaxTotal:   taxTotal,
		GrandTotal: grandTotal,
		CreatedAt:  now,
	}

	// Number derivation and the insert share one transaction, so a single
	// writer never mints duplicates. Concurrent writers can still race on
	// LastSeq; see NextNumber.
	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		lastSeq, err := invoiceRepo.LastSeq()
		if err != nil {
			return err
		}
		inv.Number = NextNumber(lastSeq)
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i := range inv.Items {
			inv.Items[i].InvoiceSeq = inv.Seq
		}
		return invoiceRepo.CreateItems(inv.Items)
	})
	if err != nil {
		return nil, err
	}

	// Document handoff, after the commit. Failure is surfaced in the
	// response flag; the persisted invoice stands.
	pdfGenerated := true
	if _, err := uc.pdf.GenerateInvoicePDF(ctx, inv, party); err != nil {
		pdfGenerated = false
		uc.log.Warn().Err(err).Int64("seq", inv.Seq).Str("number", inv.Number).
			Msg("invoice saved but PDF rendering failed")
	}

	return toInvoiceResponse(inv, pdfGenerated, true), nil
}

// GetBySeq returns one invoice with its full line detail.
func (uc *CreateInvoiceUseCase) GetBySeq(ctx context.Context, seq int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetBySeq(seq)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsBySeq(seq)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return toInvoiceResponse(inv, true, true), nil
}

// List returns invoice headers newest-first, optionally filtered by a
// party-name substring.
func (uc *CreateInvoiceUseCase) List(ctx context.Context, partyName string, limit, offset int) (*dto.InvoiceListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListRecent(partyName, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, true, false))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice, pdfGenerated, withItems bool) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		Seq:          inv.Seq,
		Number:       inv.Number,
		Date:         inv.Date.Format("2006-01-02"),
		PartyID:      inv.PartyID,
		PartyName:    inv.PartyName,
		SubTotal:     inv.SubTotal,
		TaxTotal:     inv.TaxTotal,
		GrandTotal:   inv.GrandTotal,
		PDFGenerated: pdfGenerated,
	}
	if !withItems {
		return resp
	}
	resp.Items = make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			LineNo:      it.LineNo,
			ProductID:   it.ProductID,
			Name:        it.Name,
			HSN:         it.HSN,
			Price:       it.Price,
			TaxRate:     it.TaxRate,
			Quantity:    it.Quantity,
			TotalBase:   it.TotalBase,
			CGSTAmount:  it.CGSTAmount,
			SGSTAmount:  it.SGSTAmount,
			IGSTAmount:  it.IGSTAmount,
			TotalTax:    it.TotalTax,
			FinalAmount: it.FinalAmount,
		})
	}
	return resp
}
