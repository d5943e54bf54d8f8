package treasury

import (
	"context"
	"fmt"

	"coinledger/internal/db"
	"coinledger/internal/ledger"

	"go.uber.org/zap"
)

// Controller is the only place new supply enters or leaves the ledger.
type Controller struct {
	logs      *zap.SugaredLogger
	store     *ledger.Store
	accountID string
	limits    EscrowLimits
}

func NewController(logger *zap.SugaredLogger, store *ledger.Store, accountID string, limits EscrowLimits) *Controller {
	return &Controller{
		logs:      logger,
		store:     store,
		accountID: accountID,
		limits:    limits,
	}
}

func (c *Controller) AccountID() string {
	return c.accountID
}

// EnsureAccount opens the treasury system account if it is missing.
func (c *Controller) EnsureAccount(ctx context.Context) (ledger.Account, error) {
	acc, err := c.store.OpenAccount(ctx, nil, c.accountID, true)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("open treasury account: %w", err)
	}
	return acc, nil
}

func (c *Controller) Balance(ctx context.Context, sess *db.Session) (int64, error) {
	return c.store.Balance(ctx, sess, c.accountID)
}

// Mint credits the treasury with new supply.
func (c *Controller) Mint(ctx context.Context, sess *db.Session, amount int64, meta ledger.Meta) (ledger.Entry, error) {
	if err := checkAmount(amount, c.limits.MaxMint); err != nil {
		return ledger.Entry{}, fmt.Errorf("mint %d: %w", amount, err)
	}

	entry, err := c.store.ApplyEntry(ctx, sess, ledger.EntryRequest{
		CreditAccountID: c.accountID,
		Amount:          amount,
		Type:            ledger.EntryMint,
		Meta:            meta,
	})
	if err != nil {
		c.logs.Errorw("failed to mint", "amount", amount, "error", err)
		return ledger.Entry{}, fmt.Errorf("mint %d: %w", amount, err)
	}

	c.logs.Infow("minted", "amount", amount, "meta_kind", meta.Kind(), "entry_id", entry.ID)
	return entry, nil
}

// Burn destroys supply held by the treasury. The treasury may float for
// payouts but never burns more than it holds.
func (c *Controller) Burn(ctx context.Context, sess *db.Session, amount int64, meta ledger.Meta) (ledger.Entry, error) {
	if err := checkAmount(amount, c.limits.MaxBurn); err != nil {
		return ledger.Entry{}, fmt.Errorf("burn %d: %w", amount, err)
	}

	entry, err := db.RunInTransaction(ctx, c.store.Coordinator(), sess, func(tx *db.Session) (ledger.Entry, error) {
		// the row lock holds the balance still until the debit commits.
		if err := c.store.LockAccount(ctx, tx, c.accountID); err != nil {
			return ledger.Entry{}, err
		}
		balance, err := c.store.Balance(ctx, tx, c.accountID)
		if err != nil {
			return ledger.Entry{}, err
		}
		if balance < amount {
			return ledger.Entry{}, fmt.Errorf("treasury holds %d: %w", balance, ledger.ErrInsufficientTreasuryBalance)
		}

		return c.store.ApplyEntry(ctx, tx, ledger.EntryRequest{
			DebitAccountID: c.accountID,
			Amount:         amount,
			Type:           ledger.EntryBurn,
			Meta:           meta,
		})
	})
	if err != nil {
		c.logs.Errorw("failed to burn", "amount", amount, "error", err)
		return ledger.Entry{}, fmt.Errorf("burn %d: %w", amount, err)
	}

	c.logs.Infow("burned", "amount", amount, "meta_kind", meta.Kind(), "entry_id", entry.ID)
	return entry, nil
}

// Reason annotates a manual treasury operation.
func Reason(reason string) ledger.Meta {
	return ledger.Meta{Treasury: &ledger.TreasuryMeta{Reason: reason}}
}

func checkAmount(amount, limit int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", ledger.ErrInvalidEntry)
	}
	if amount > limit {
		return fmt.Errorf("ceiling is %d: %w", limit, ledger.ErrLimitExceeded)
	}
	return nil
}
