package dto

import "github.com/shopspring/decimal"

// DashboardSummary counters and lifetime revenue for the landing screen.
type DashboardSummary struct {
	ProductCount   int64             `json:"product_count"`
	PartyCount     int64             `json:"party_count"`
	InvoiceCount   int64             `json:"invoice_count"`
	TotalRevenue   decimal.Decimal   `json:"total_revenue"`
	RecentInvoices []InvoiceResponse `json:"recent_invoices"`
}
