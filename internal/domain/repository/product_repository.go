package repository

import "github.com/gopidistributors/billing-api/internal/domain/entity"

// ProductRepository defines the persistence port for Product.
// BulkInsert writes the whole slice durably or fails atomically for the call;
// the import pipeline relies on that per-chunk atomicity.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// Search lists products, optionally filtered by a case-insensitive name
	// substring or HSN prefix. Empty q lists everything (paginated).
	Search(q string, limit, offset int) ([]*entity.Product, error)
	BulkInsert(products []*entity.Product) error
}
