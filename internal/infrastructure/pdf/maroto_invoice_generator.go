// Package pdf renders the printable GST tax invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + GSTIN  │  Invoice No. + Date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SELLER: Address / Phone                                    │
//	│  BILL TO: Party name + GSTIN + State                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Item | HSN | Qty | Rate | Tax% | Tax | Amount   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Sub Total / CGST+SGST or IGST / Grand Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: declaration + authorised signatory                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/gopidistributors/billing-api/internal/application/billing"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Indian digit grouping: 1,00,000 not 100,000.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct {
	seller appbilling.SellerInfo
}

// NewMarotoInvoiceGenerator builds the generator with the seller letterhead.
func NewMarotoInvoiceGenerator(seller appbilling.SellerInfo) *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{seller: seller}
}

// GenerateInvoicePDF renders the invoice and returns its bytes. party may be
// nil (deleted since billing); the denormalized PartyName on the invoice is
// used then.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	party *entity.Party,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+invoice.Number, true).
		WithAuthor(g.seller.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.sellerRow())
	m.AddRows(billToRow(invoice, party))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(g.seller) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: company name + GSTIN (left), invoice number + date (right).
func (g *MarotoInvoiceGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.seller.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+g.seller.GSTIN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sellerRow: issuing company address line.
func (g *MarotoInvoiceGenerator) sellerRow() core.Row {
	addr := fmt.Sprintf("%s, %s, %s - %s",
		nonEmpty(g.seller.Address, "—"), g.seller.City, g.seller.State, g.seller.Pincode)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SELLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Phone: %s", addr, nonEmpty(g.seller.Phone, "—")),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// billToRow: buyer block. A missing GSTIN prints as an unregistered buyer.
func billToRow(invoice *entity.Invoice, party *entity.Party) core.Row {
	name := invoice.PartyName
	gstin := "Unregistered"
	detail := ""
	if party != nil {
		name = party.Name
		if party.GSTIN != "" {
			gstin = party.GSTIN
		}
		detail = fmt.Sprintf("%s   |   State: %s   |   Mobile: %s",
			nonEmpty(party.Address, "—"), nonEmpty(party.State, "—"), nonEmpty(party.Mobile, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   %s", gstin, detail),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: line-item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Item", 3, align.Left),
		h("HSN", 1, align.Center),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Tax%", 1, align.Center),
		h("Tax Amt", 1, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per invoice line.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.LineNo),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(it.HSN, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatAmount(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				"₹"+formatAmount(it.TotalTax),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatAmount(it.FinalAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block. The tax line names the split that
// applied: CGST+SGST for intra-state sales, IGST for inter-state.
func totalsRow(invoice *entity.Invoice) core.Row {
	taxLabel := "CGST + SGST:"
	for _, it := range invoice.Items {
		if it.IGSTAmount.IsPositive() {
			taxLabel = "IGST:"
			break
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Sub Total:"),
			label(taxLabel),
			grandLabel("GRAND TOTAL:"),
		),
		col.New(3).Add(
			value("₹"+formatAmount(invoice.SubTotal)),
			value("₹"+formatAmount(invoice.TaxTotal)),
			grandValue("₹"+formatAmount(invoice.GrandTotal)),
		),
		col.New(3),
	)
}

// footerRows: declaration + authorised signatory.
func footerRows(seller appbilling.SellerInfo) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Declaration: We declare that this invoice shows the actual price of "+
					"the goods described and that all particulars are true and correct.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
		row.New(16).Add(
			col.New(7),
			col.New(5).Add(
				text.New("For "+seller.Name, props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
				}),
				text.New("Authorised Signatory", props.Text{
					Size: 8, Align: align.Right, Top: 12, Color: colorGray,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount renders a money value with en-IN grouping.
// E.g. 125000.5 → "1,25,000.50"
func formatAmount(d decimal.Decimal) string {
	return inr.Sprintf("%v", number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
