package ledger

import (
	"errors"

	"coinledger/internal/db"
)

// Failure taxonomy shared by every settlement component. Callers match with errors.Is.
var (
	ErrInsufficientFunds           = errors.New("insufficient funds")
	ErrLimitExceeded               = errors.New("limit exceeded")
	ErrTransactionAborted          = db.ErrTransactionAborted
	ErrInsufficientTreasuryBalance = errors.New("insufficient treasury balance")
	ErrRecordNotFound              = db.ErrNotFound
	ErrBridgeTransactionFailed     = errors.New("bridge transaction failed")
	ErrInvalidEntry                = errors.New("invalid ledger entry")
	ErrDeadLetterResolved          = errors.New("dead letter already resolved")
)
