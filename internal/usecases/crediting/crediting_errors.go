package crediting

import "errors"

var (
	// ErrAccountNotFound means the user has no credit account. Accounts are
	// opened at registration, so hitting this usually points at a deleted or
	// never-registered user.
	ErrAccountNotFound = errors.New("credit account not found")

	// ErrInvalidAmount rejects zero or negative amounts before they reach
	// the ledger.
	ErrInvalidAmount = errors.New("credit amount must be positive")
)
