package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL (usable with pool or tx).
// The invoices table uses a bigserial seq; the sequencer derives display
// numbers from it.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// LastSeq returns the highest persisted invoice seq, or 0 when the table is empty.
func (r *InvoiceRepo) LastSeq() (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(seq), 0) FROM invoices`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("last invoice seq: %w", err)
	}
	return seq, nil
}

// Create persists the invoice header and assigns the store identity.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (number, date, party_id, party_name, sub_total, tax_total, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		invoice.Number, invoice.Date, invoice.PartyID, invoice.PartyName,
		invoice.SubTotal, invoice.TaxTotal, invoice.GrandTotal, invoice.CreatedAt,
	).Scan(&invoice.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItems persists the ordered line items of one invoice.
func (r *InvoiceRepo) CreateItems(items []entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_seq, line_no, product_id, name, hsn, price, tax_rate, quantity,
			total_base, cgst_amount, sgst_amount, igst_amount, total_tax, final_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.InvoiceSeq, it.LineNo, it.ProductID, it.Name, it.HSN, it.Price, it.TaxRate, it.Quantity,
			it.TotalBase, it.CGSTAmount, it.SGSTAmount, it.IGSTAmount, it.TotalTax, it.FinalAmount,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item %d: %w", it.LineNo, err)
		}
	}
	return nil
}

// GetBySeq returns the invoice header, or nil when missing.
func (r *InvoiceRepo) GetBySeq(seq int64) (*entity.Invoice, error) {
	query := `
		SELECT seq, number, date, party_id, party_name, sub_total, tax_total, grand_total, created_at
		FROM invoices WHERE seq = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, seq).Scan(
		&inv.Seq, &inv.Number, &inv.Date, &inv.PartyID, &inv.PartyName,
		&inv.SubTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetItemsBySeq returns the line items of one invoice in display order.
func (r *InvoiceRepo) GetItemsBySeq(seq int64) ([]entity.InvoiceItem, error) {
	query := `
		SELECT invoice_seq, line_no, product_id, name, hsn, price, tax_rate, quantity,
			total_base, cgst_amount, sgst_amount, igst_amount, total_tax, final_amount
		FROM invoice_items WHERE invoice_seq = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, seq)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.InvoiceSeq, &it.LineNo, &it.ProductID, &it.Name, &it.HSN,
			&it.Price, &it.TaxRate, &it.Quantity, &it.TotalBase, &it.CGSTAmount,
			&it.SGSTAmount, &it.IGSTAmount, &it.TotalTax, &it.FinalAmount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListRecent lists invoice headers newest-first, optionally filtered by a
// party-name substring.
func (r *InvoiceRepo) ListRecent(partyName string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT seq, number, date, party_id, party_name, sub_total, tax_total, grand_total, created_at
		FROM invoices
		WHERE $1 = '' OR party_name ILIKE '%' || $1 || '%'
		ORDER BY seq DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, partyName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
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
