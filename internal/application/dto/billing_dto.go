package dto

import (
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	PartyID string               `json:"party_id"`
	Items   []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one invoice line. UnitPrice is optional; when zero the
// product's current base price is billed.
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
}

// InvoiceItemResponse one line with its tax split.
type InvoiceItemResponse struct {
	LineNo      int             `json:"line_no"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	HSN         string          `json:"hsn"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Quantity    int64           `json:"quantity"`
	TotalBase   decimal.Decimal `json:"total_base"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	IGSTAmount  decimal.Decimal `json:"igst_amount"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	FinalAmount decimal.Decimal `json:"final_amount"`
}

// InvoiceResponse invoice with full detail.
// PDFGenerated is false when the invoice was saved but the document
// rendering step failed afterwards (the save is never rolled back).
type InvoiceResponse struct {
	Seq          int64                 `json:"seq"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	PartyID      string                `json:"party_id"`
	PartyName    string                `json:"party_name"`
	Items        []InvoiceItemResponse `json:"items,omitempty"`
	SubTotal     decimal.Decimal       `json:"sub_total"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
	PDFGenerated bool                  `json:"pdf_generated"`
}

// InvoiceListResponse paginated invoice listing (headers only).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
