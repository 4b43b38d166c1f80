package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregates for the dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository builds the repository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *AnalyticsRepo) CountParties(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM parties`)
}

func (r *AnalyticsRepo) CountInvoices(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM invoices`)
}

func (r *AnalyticsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// TotalRevenue sums grand totals across all invoices.
func (r *AnalyticsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(grand_total), 0) FROM invoices`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// RecentInvoices returns the newest invoice headers, by seq descending.
func (r *AnalyticsRepo) RecentInvoices(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT seq, number, date, party_id, party_name, sub_total, tax_total, grand_total, created_at
		FROM invoices ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.Seq, &inv.Number, &inv.Date, &inv.PartyID, &inv.PartyName,
			&inv.SubTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
