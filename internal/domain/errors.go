package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("duplicate resource")
	ErrConflict         = errors.New("conflict with current state")
	ErrEmptyInvoice     = errors.New("invoice has no line items")
	ErrNoPartySelected  = errors.New("no party selected")
	ErrNoValidRows      = errors.New("no valid rows in file")
	ErrImportInProgress = errors.New("an import is already in progress")
)
