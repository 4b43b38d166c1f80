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

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implements PartyRepository over PostgreSQL (usable with pool or tx).
type PartyRepo struct {
	q Querier
}

// NewPartyRepository builds the persistence adapter. Pass a pool or tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persists a new party.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (id, name, gstin, mobile, address, state, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, party.GSTIN, party.Mobile, party.Address,
		party.State, party.Email, party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID returns a party by ID, or nil when missing.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	query := `
		SELECT id, name, gstin, mobile, address, state, email, created_at, updated_at
		FROM parties WHERE id = $1`
	var p entity.Party
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.GSTIN, &p.Mobile, &p.Address, &p.State, &p.Email,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// Update edits an existing party.
func (r *PartyRepo) Update(party *entity.Party) error {
	query := `
		UPDATE parties SET name = $2, gstin = $3, mobile = $4, address = $5, state = $6, email = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, party.GSTIN, party.Mobile, party.Address,
		party.State, party.Email, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// Delete removes a party by ID. Invoices referencing it are left untouched.
func (r *PartyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}

// Search lists parties filtered by name substring or mobile prefix, paginated.
func (r *PartyRepo) Search(q string, limit, offset int) ([]*entity.Party, error) {
	query := `
		SELECT id, name, gstin, mobile, address, state, email, created_at, updated_at
		FROM parties
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR mobile LIKE $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.GSTIN, &p.Mobile, &p.Address, &p.State,
			&p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
