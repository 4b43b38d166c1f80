// Package analytics holds the read-only reporting use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/gopidistributors/billing-api/internal/application/dto"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

const dashboardRecentInvoices = 5

// DashboardUseCase builds the landing-screen summary: entity counters,
// lifetime revenue and the most recent invoices. All data comes from the
// analytics repository; the use case never touches entity tables directly.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary assembles the dashboard numbers.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	products, err := uc.analyticsRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count products: %w", err)
	}
	parties, err := uc.analyticsRepo.CountParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count parties: %w", err)
	}
	invoices, err := uc.analyticsRepo.CountInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count invoices: %w", err)
	}
	revenue, err := uc.analyticsRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total revenue: %w", err)
	}
	recent, err := uc.analyticsRepo.RecentInvoices(ctx, dashboardRecentInvoices)
	if err != nil {
		return nil, fmt.Errorf("dashboard: recent invoices: %w", err)
	}

	summary := &dto.DashboardSummary{
		ProductCount: products,
		PartyCount:   parties,
		InvoiceCount: invoices,
		TotalRevenue: revenue,
	}
	for _, inv := range recent {
		summary.RecentInvoices = append(summary.RecentInvoices, dto.InvoiceResponse{
			Seq:          inv.Seq,
			Number:       inv.Number,
			Date:         inv.Date.Format("2006-01-02"),
			PartyID:      inv.PartyID,
			PartyName:    inv.PartyName,
			SubTotal:     inv.SubTotal,
			TaxTotal:     inv.TaxTotal,
			GrandTotal:   inv.GrandTotal,
			PDFGenerated: true,
		})
	}
	return summary, nil
}
