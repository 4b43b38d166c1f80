package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/gopidistributors/billing-api/internal/application/dto"
	"github.com/gopidistributors/billing-api/internal/domain"
	"github.com/gopidistributors/billing-api/internal/domain/entity"
	"github.com/gopidistributors/billing-api/internal/domain/gst"
	"github.com/gopidistributors/billing-api/internal/domain/repository"
)

// PartyUseCase CRUD for billing parties (customers and suppliers).
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase builds the use case.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// Create registers a new party. State must be one of the enumerated
// jurisdictions; GSTIN is normalized by trim/truncate only.
func (uc *PartyUseCase) Create(in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" || in.Mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	if !gst.IsState(in.State) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	party := &entity.Party{
		ID:        uuid.New().String(),
		Name:      in.Name,
		GSTIN:     gst.NormalizeGSTIN(in.GSTIN),
		Mobile:    in.Mobile,
		Address:   in.Address,
		State:     in.State,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID returns one party.
func (uc *PartyUseCase) GetByID(id string) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return toPartyResponse(party), nil
}

// Update edits a party. Nil fields stay unchanged.
func (uc *PartyUseCase) Update(id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		party.Name = *in.Name
	}
	if in.GSTIN != nil {
		party.GSTIN = gst.NormalizeGSTIN(*in.GSTIN)
	}
	if in.Mobile != nil {
		party.Mobile = *in.Mobile
	}
	if in.Address != nil {
		party.Address = *in.Address
	}
	if in.State != nil {
		if !gst.IsState(*in.State) {
			return nil, domain.ErrInvalidInput
		}
		party.State = *in.State
	}
	if in.Email != nil {
		party.Email = *in.Email
	}
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// List lists parties, optionally filtered by name or mobile.
func (uc *PartyUseCase) List(q string, limit, offset int) (*dto.PartyListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.Search(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartyResponse(p))
	}
	return &dto.PartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a party. Past invoices keep their denormalized copy of the
// name, so the dangling reference is accepted.
func (uc *PartyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:      p.ID,
		Name:    p.Name,
		GSTIN:   p.GSTIN,
		Mobile:  p.Mobile,
		Address: p.Address,
		State:   p.State,
		Email:   p.Email,
	}
}
