package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopidistributors/billing-api/internal/application/billing"
	"github.com/gopidistributors/billing-api/internal/application/dto"
	"github.com/gopidistributors/billing-api/internal/domain"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
	"github.com/gopidistributors/billing-api/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakePartyRepo struct {
	parties map[string]*entity.Party
}

func (f *fakePartyRepo) Create(p *entity.Party) error { f.parties[p.ID] = p; return nil }
func (f *fakePartyRepo) GetByID(id string) (*entity.Party, error) {
	return f.parties[id], nil
}
func (f *fakePartyRepo) Update(p *entity.Party) error { f.parties[p.ID] = p; return nil }
func (f *fakePartyRepo) Delete(id string) error       { delete(f.parties, id); return nil }
func (f *fakePartyRepo) Search(string, int, int) ([]*entity.Party, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }
func (f *fakeProductRepo) Search(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) BulkInsert(products []*entity.Product) error {
	for _, p := range products {
		f.products[p.ID] = p
	}
	return nil
}

// fakeInvoiceRepo assigns sequential identities like the bigserial column.
type fakeInvoiceRepo struct {
	seq      int64
	invoices map[int64]*entity.Invoice
	items    map[int64][]entity.InvoiceItem
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[int64]*entity.Invoice{},
		items:    map[int64][]entity.InvoiceItem{},
	}
}

func (f *fakeInvoiceRepo) LastSeq() (int64, error) { return f.seq, nil }
func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	f.seq++
	inv.Seq = f.seq
	f.invoices[inv.Seq] = inv
	return nil
}
func (f *fakeInvoiceRepo) CreateItems(items []entity.InvoiceItem) error {
	if len(items) > 0 {
		f.items[items[0].InvoiceSeq] = items
	}
	return nil
}
func (f *fakeInvoiceRepo) GetBySeq(seq int64) (*entity.Invoice, error) {
	return f.invoices[seq], nil
}
func (f *fakeInvoiceRepo) GetItemsBySeq(seq int64) ([]entity.InvoiceItem, error) {
	return f.items[seq], nil
}
func (f *fakeInvoiceRepo) ListRecent(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}

// fakeTxRunner hands the fake invoice repo straight to the callback; the
// "transaction" is the call itself.
type fakeTxRunner struct {
	repo repository.InvoiceRepository
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(f.repo)
}

type fakePDF struct {
	err   error
	calls int
}

func (f *fakePDF) GenerateInvoicePDF(context.Context, *entity.Invoice, *entity.Party) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7"), nil
}

// ── fixture ───────────────────────────────────────────────────────────────────

type billingFixture struct {
	uc       *billing.CreateInvoiceUseCase
	parties  *fakePartyRepo
	products *fakeProductRepo
	invoices *fakeInvoiceRepo
	pdf      *fakePDF
}

func newBillingFixture() *billingFixture {
	parties := &fakePartyRepo{parties: map[string]*entity.Party{
		"party-local": {ID: "party-local", Name: "Mehta Stores", State: "Gujarat"},
		"party-outer": {ID: "party-outer", Name: "Chennai Traders", State: "Tamil Nadu"},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Parle-G 250g", HSN: "1905",
			Price: decimal.RequireFromString("25.50"), TaxRate: decimal.NewFromInt(18)},
		"prod-2": {ID: "prod-2", Name: "Tea Dust 500g", HSN: "0902",
			Price: decimal.NewFromInt(310), TaxRate: decimal.NewFromInt(5)},
	}}
	invoices := newFakeInvoiceRepo()
	pdf := &fakePDF{}
	log := logger.New(logger.Config{Level: "error"})

	uc := billing.NewCreateInvoiceUseCase(
		&fakeTxRunner{repo: invoices}, parties, products, invoices,
		pdf, "Gujarat", log,
	)
	return &billingFixture{uc: uc, parties: parties, products: products, invoices: invoices, pdf: pdf}
}

// ── tests ─────────────────────────────────────────────────────────────────────

// TestCreateInvoice_IntraState bills a same-state party and checks the totals
// law (grand = sub + tax) plus the CGST/SGST split on every line.
func TestCreateInvoice_IntraState(t *testing.T) {
	fx := newBillingFixture()

	out, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		PartyID: "party-local",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 25.50×2 = 51.00 base, 18% → 9.18 tax; 310×1 base, 5% → 15.50 tax.
	assert.True(t, out.SubTotal.Equal(decimal.RequireFromString("361")), "sub total, got %s", out.SubTotal)
	assert.True(t, out.TaxTotal.Equal(decimal.RequireFromString("24.68")), "tax total, got %s", out.TaxTotal)
	assert.True(t, out.GrandTotal.Equal(out.SubTotal.Add(out.TaxTotal)), "grand = sub + tax")

	require.Len(t, out.Items, 2)
	for _, it := range out.Items {
		assert.True(t, it.IGSTAmount.IsZero(), "line %d: intra-state sale has no IGST", it.LineNo)
		assert.True(t, it.CGSTAmount.Equal(it.SGSTAmount), "line %d: halves must match", it.LineNo)
	}
	assert.Equal(t, "INV-00001", out.Number)
	assert.True(t, out.PDFGenerated)
}

// TestCreateInvoice_InterState bills an out-of-state party and checks the
// whole tax lands in IGST.
func TestCreateInvoice_InterState(t *testing.T) {
	fx := newBillingFixture()

	out, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		PartyID: "party-outer",
		Items:   []dto.InvoiceItemRequest{{ProductID: "prod-2", Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	line := out.Items[0]
	assert.True(t, line.IGSTAmount.Equal(line.TotalTax), "full tax as IGST")
	assert.True(t, line.CGSTAmount.IsZero())
	assert.True(t, line.SGSTAmount.IsZero())
}

// TestCreateInvoice_NumbersFollowPersistedSequence verifies consecutive
// invoices continue the series from the last persisted identity.
func TestCreateInvoice_NumbersFollowPersistedSequence(t *testing.T) {
	fx := newBillingFixture()
	req := dto.CreateInvoiceRequest{
		PartyID: "party-local",
		Items:   []dto.InvoiceItemRequest{{ProductID: "prod-1", Quantity: 1}},
	}

	first, err := fx.uc.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := fx.uc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", first.Number)
	assert.Equal(t, "INV-00002", second.Number)
}

// TestCreateInvoice_UnitPriceOverride verifies a non-zero request price
// replaces the catalog price for that line only.
func TestCreateInvoice_UnitPriceOverride(t *testing.T) {
	fx := newBillingFixture()

	out, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		PartyID: "party-local",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Items[0].Price.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.SubTotal.Equal(decimal.NewFromInt(20)))
}

// TestCreateInvoice_NoParty verifies an invoice without a party is rejected
// before anything is read or written.
func TestCreateInvoice_NoParty(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNoPartySelected)
	assert.Empty(t, fx.invoices.invoices, "nothing may be persisted")
}

// TestCreateInvoice_EmptyItems verifies an invoice with no lines is rejected.
func TestCreateInvoice_EmptyItems(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{PartyID: "party-local"})

	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
	assert.Empty(t, fx.invoices.invoices)
}

// TestCreateInvoice_UnknownProduct verifies a line referencing a missing
// product fails the whole invoice.
func TestCreateInvoice_UnknownProduct(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		PartyID: "party-local",
		Items:   []dto.InvoiceItemRequest{{ProductID: "prod-missing", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.invoices.invoices)
}

// TestCreateInvoice_NonPositiveQuantity verifies zero and negative quantities
// are rejected.
func TestCreateInvoice_NonPositiveQuantity(t *testing.T) {
	fx := newBillingFixture()

	for _, qty := range []int64{0, -2} {
		_, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
			PartyID: "party-local",
			Items:   []dto.InvoiceItemRequest{{ProductID: "prod-1", Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity %d", qty)
	}
}

// TestCreateInvoice_PDFFailureKeepsInvoice verifies the document handoff is
// not transactional: a rendering failure is reported through the flag while
// the persisted invoice stands.
func TestCreateInvoice_PDFFailureKeepsInvoice(t *testing.T) {
	fx := newBillingFixture()
	fx.pdf.err = errors.New("font missing")

	out, err := fx.uc.Create(context.Background(), dto.CreateInvoiceRequest{
		PartyID: "party-local",
		Items:   []dto.InvoiceItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err, "PDF failure must not fail the billing")

	assert.False(t, out.PDFGenerated)
	assert.Len(t, fx.invoices.invoices, 1, "invoice stays persisted")
	assert.Equal(t, 1, fx.pdf.calls)
}

// TestGetBySeq_Missing verifies a lookup past the end of the series reports
// not-found.
func TestGetBySeq_Missing(t *testing.T) {
	fx := newBillingFixture()

	_, err := fx.uc.GetBySeq(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
