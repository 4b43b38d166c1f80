package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gopidistributors/billing-api/internal/domain/entity"
)

// AnalyticsRepository provides read-only aggregates for the dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountParties(ctx context.Context) (int64, error)
	CountInvoices(ctx context.Context) (int64, error)
	// TotalRevenue is the lifetime sum of invoice grand totals.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RecentInvoices(ctx context.Context, limit int) ([]*entity.Invoice, error)
}
