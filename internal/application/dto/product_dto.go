package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name    string          `json:"name"`
	HSN     string          `json:"hsn"`
	Price   decimal.Decimal `json:"price"`
	TaxRate decimal.Decimal `json:"tax_rate"`
	Stock   int64           `json:"stock"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name    *string          `json:"name,omitempty"`
	HSN     *string          `json:"hsn,omitempty"`
	Price   *decimal.Decimal `json:"price,omitempty"`
	TaxRate *decimal.Decimal `json:"tax_rate,omitempty"`
	Stock   *int64           `json:"stock,omitempty"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	HSN       string          `json:"hsn"`
	Price     decimal.Decimal `json:"price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
