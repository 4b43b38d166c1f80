package repository

import "github.com/gopidistributors/billing-api/internal/domain/entity"

// PartyRepository defines the persistence port for Party.
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	Update(party *entity.Party) error
	// Delete removes the party even when invoices reference it; invoices keep
	// a denormalized name and tolerate the dangling reference.
	Delete(id string) error
	// Search lists parties, optionally filtered by a case-insensitive name
	// substring or mobile prefix.
	Search(q string, limit, offset int) ([]*entity.Party, error)
}
