package dto

// ImportReportResponse outcome of a completed or failed catalog import.
type ImportReportResponse struct {
	State           string `json:"state"`
	AcceptedRows    int    `json:"accepted_rows"`
	CommittedChunks int    `json:"committed_chunks"`
	CommittedRows   int    `json:"committed_rows"`
	Progress        int    `json:"progress"`
	// FailedAtRow is the offset of the first row of the chunk that failed,
	// or -1 when no chunk failed. Rows before it remain committed.
	FailedAtRow int    `json:"failed_at_row"`
	Error       string `json:"error,omitempty"`
}

// ImportStatusResponse snapshot of the active (or last) import session.
type ImportStatusResponse struct {
	Active bool                 `json:"active"`
	Report ImportReportResponse `json:"report"`
}
