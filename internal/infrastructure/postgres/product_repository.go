package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopidistributors/billing-api/internal/domain"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, hsn, price, tax_rate, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.HSN, product.Price, product.TaxRate,
		product.Stock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns a product by ID, or nil when missing.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, hsn, price, tax_rate, stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.HSN, &p.Price, &p.TaxRate, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update edits an existing product.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, hsn = $3, price = $4, tax_rate = $5, stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.HSN, product.Price, product.TaxRate,
		product.Stock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Search lists products filtered by name substring or HSN prefix, paginated.
func (r *ProductRepo) Search(q string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, hsn, price, tax_rate, stock, created_at, updated_at
		FROM products
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR hsn LIKE $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.HSN, &p.Price, &p.TaxRate, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// BulkInsert writes the whole slice via COPY. pgx wraps the COPY in a
// transaction when the Querier is a pool, so the call commits fully or not
// at all, which is the atomicity the import pipeline counts on per chunk.
func (r *ProductRepo) BulkInsert(products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.ID, p.Name, p.HSN, p.Price, p.TaxRate, p.Stock, p.CreatedAt, p.UpdatedAt,
		})
	}
	copied, err := r.q.CopyFrom(
		context.Background(),
		pgx.Identifier{"products"},
		[]string{"id", "name", "hsn", "price", "tax_rate", "stock", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("bulk insert products: %w", err)
	}
	if copied != int64(len(products)) {
		return fmt.Errorf("bulk insert products: wrote %d of %d rows", copied, len(products))
	}
	return nil
}
