package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a line on an invoice: a snapshot of the product at billing
// time plus the computed tax split. It is owned by its Invoice and never
// persisted independently.
//
// Invariants: TotalBase = Price × Quantity; exactly one of CGST+SGST or IGST
// is non-zero; TotalTax = CGST + SGST + IGST; FinalAmount = TotalBase + TotalTax.
type InvoiceItem struct {
	InvoiceSeq  int64
	LineNo      int
	ProductID   string // reference only; the snapshot below is authoritative
	Name        string
	HSN         string
	Price       decimal.Decimal
	TaxRate     decimal.Decimal
	Quantity    int64
	TotalBase   decimal.Decimal
	CGSTAmount  decimal.Decimal
	SGSTAmount  decimal.Decimal
	IGSTAmount  decimal.Decimal
	TotalTax    decimal.Decimal
	FinalAmount decimal.Decimal
}

// Invoice is an immutable sales invoice. Seq is the store-assigned numeric
// identity; Number is the human-readable display number derived from the
// previously persisted Seq. PartyName is denormalized so listings and PDFs
// survive party deletion. GrandTotal = SubTotal + TaxTotal.
type Invoice struct {
	Seq        int64
	Number     string
	Date       time.Time
	PartyID    string
	PartyName  string
	Items      []InvoiceItem
	SubTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	CreatedAt  time.Time
}
