package dto

// CreatePartyRequest body for POST /api/parties.
type CreatePartyRequest struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Mobile  string `json:"mobile"`
	Address string `json:"address,omitempty"`
	State   string `json:"state"`
	Email   string `json:"email,omitempty"`
}

// UpdatePartyRequest body for PUT /api/parties/:id. Nil fields are left unchanged.
type UpdatePartyRequest struct {
	Name    *string `json:"name,omitempty"`
	GSTIN   *string `json:"gstin,omitempty"`
	Mobile  *string `json:"mobile,omitempty"`
	Address *string `json:"address,omitempty"`
	State   *string `json:"state,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// PartyResponse party in responses.
type PartyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Mobile  string `json:"mobile"`
	Address string `json:"address,omitempty"`
	State   string `json:"state"`
	Email   string `json:"email,omitempty"`
}

// PartyListResponse paginated party listing.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
