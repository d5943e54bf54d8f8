package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/db"
	"coinledger/internal/deadletter"
	"coinledger/internal/ethereum"
	"coinledger/internal/ledger"
	"coinledger/internal/treasury"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts    = 5
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 30 * time.Second

	autoResolver = "bridge"
)

// Processor settles bridge mints and burns once the chain confirms them. A
// transaction the chain cannot confirm within the retry budget is parked in
// the dead-letter store instead of being settled or dropped.
type Processor struct {
	logs           *zap.SugaredLogger
	store          *ledger.Store
	treasury       *treasury.Controller
	deadLetters    *deadletter.Store
	chain          ChainClient
	maxAttempts    uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type Option func(*Processor)

func WithMaxAttempts(n uint) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

func WithBackoff(initial, max time.Duration) Option {
	return func(p *Processor) {
		p.initialBackoff = initial
		p.maxBackoff = max
	}
}

func NewProcessor(
	logger *zap.SugaredLogger,
	store *ledger.Store,
	treasury *treasury.Controller,
	deadLetters *deadletter.Store,
	chain ChainClient,
	opts ...Option,
) *Processor {
	p := &Processor{
		logs:           logger,
		store:          store,
		treasury:       treasury,
		deadLetters:    deadLetters,
		chain:          chain,
		maxAttempts:    defaultMaxAttempts,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process confirms ev on its chain and settles it. Exhausting the retry budget
// is not an error for the caller: the event is dead-lettered and
// OutcomeDeadLettered is returned.
func (p *Processor) Process(ctx context.Context, ev Event) (Outcome, error) {
	if err := ev.Validate(); err != nil {
		return OutcomeNone, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	if ev.Error != "" {
		return p.deadLetter(ctx, ev, ev.Attempts, errors.New(ev.Error))
	}

	settled, err := p.store.HasReference(ctx, nil, ev.reference())
	if err != nil {
		return OutcomeNone, err
	}
	if settled {
		p.logs.Infow("bridge transaction already settled", "transaction_hash", ev.TransactionHash)
		return OutcomeDuplicate, nil
	}

	attempts, err := p.confirm(ctx, ev)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return OutcomeNone, ctxErr
		}
		return p.deadLetter(ctx, ev, ev.Attempts+attempts, err)
	}

	err = p.store.Coordinator().Run(ctx, nil, func(tx *db.Session) error {
		return p.settleDelivery(ctx, tx, ev)
	})
	if errors.Is(err, ErrAlreadySettled) || errors.Is(err, ledger.ErrDeadLetterResolved) {
		return OutcomeDuplicate, nil
	}
	if err != nil {
		p.logs.Errorw("failed to settle bridge transaction",
			"transaction_hash", ev.TransactionHash, "direction", ev.Direction, "error", err)
		return OutcomeNone, fmt.Errorf("settle bridge %s: %w", ev.Direction, err)
	}

	p.logs.Infow("bridge transaction settled",
		"transaction_hash", ev.TransactionHash,
		"account_id", ev.AccountID,
		"direction", ev.Direction,
		"num_units", ev.NumUnits)
	return OutcomeSettled, nil
}

// ResolveDeadLetter closes a parked transaction. When honor is set the
// transaction is settled through the treasury in the same unit of work.
func (p *Processor) ResolveDeadLetter(ctx context.Context, hash, resolver string, honor bool) (deadletter.Transaction, error) {
	return db.RunInTransaction(ctx, p.store.Coordinator(), nil, func(tx *db.Session) (deadletter.Transaction, error) {
		record, err := p.deadLetters.Get(ctx, tx, hash)
		if err != nil {
			return deadletter.Transaction{}, err
		}
		if record.IsResolved {
			return deadletter.Transaction{}, fmt.Errorf("dead letter %s: %w", hash, ledger.ErrDeadLetterResolved)
		}

		if honor {
			if err := p.settle(ctx, tx, eventFromDeadLetter(record)); err != nil {
				return deadletter.Transaction{}, fmt.Errorf("honor dead letter %s: %w", hash, err)
			}
		}

		return p.deadLetters.MarkResolved(ctx, tx, hash, resolver, honor)
	})
}

func (p *Processor) confirm(ctx context.Context, ev Event) (int, error) {
	attempts := 0
	operation := func() (ethereum.Confirmation, error) {
		attempts++
		c, err := p.chain.Confirm(ctx, ev.Chain, ev.TransactionHash)
		if err != nil && ethereum.Permanent(err) {
			return c, backoff.Permanent(err)
		}
		return c, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.initialBackoff
	policy.MaxInterval = p.maxBackoff

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(p.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			p.logs.Warnw("bridge transaction not confirmed yet",
				"transaction_hash", ev.TransactionHash,
				"attempt", attempts,
				"next_backoff", next,
				"error", err)
		}),
	)
	return attempts, err
}

// settleDelivery settles a redelivered event against its dead letter, if any.
// A resolved dead letter is final. An open one is closed as honored by the
// same unit of work that settles it.
func (p *Processor) settleDelivery(ctx context.Context, tx *db.Session, ev Event) error {
	record, err := p.deadLetters.Get(ctx, tx, ev.TransactionHash)
	if err != nil && !errors.Is(err, ledger.ErrRecordNotFound) {
		return err
	}
	parked := err == nil
	if parked && record.IsResolved {
		p.logs.Infow("ignoring redelivery of resolved dead letter",
			"transaction_hash", ev.TransactionHash, "honored", record.Honored)
		return fmt.Errorf("dead letter %s: %w", ev.TransactionHash, ledger.ErrDeadLetterResolved)
	}

	if err := p.settle(ctx, tx, ev); err != nil {
		return err
	}
	if !parked {
		return nil
	}

	if _, err := p.deadLetters.MarkResolved(ctx, tx, ev.TransactionHash, autoResolver, true); err != nil {
		return fmt.Errorf("close dead letter %s: %w", ev.TransactionHash, err)
	}
	p.logs.Infow("dead letter closed by confirmed redelivery", "transaction_hash", ev.TransactionHash)
	return nil
}

func (p *Processor) settle(ctx context.Context, tx *db.Session, ev Event) error {
	settled, err := p.store.HasReference(ctx, tx, ev.reference())
	if err != nil {
		return err
	}
	if settled {
		return ErrAlreadySettled
	}

	treasuryID := p.treasury.AccountID()
	meta := ev.meta()

	switch ev.Direction {
	case deadletter.DirectionMint:
		if _, err := p.treasury.Mint(ctx, tx, ev.NumUnits, meta); err != nil {
			return err
		}
		_, err = p.store.Transfer(ctx, tx, treasuryID, ev.AccountID, ev.NumUnits, ledger.EntryAdminTransfer, meta)
		return err
	case deadletter.DirectionBurn:
		if _, err := p.store.Transfer(ctx, tx, ev.AccountID, treasuryID, ev.NumUnits, ledger.EntryUserTransfer, meta); err != nil {
			return err
		}
		_, err = p.treasury.Burn(ctx, tx, ev.NumUnits, meta)
		return err
	}
	return fmt.Errorf("%w: direction %q", ErrInvalidEvent, ev.Direction)
}

func (p *Processor) deadLetter(ctx context.Context, ev Event, attempts int, cause error) (Outcome, error) {
	cause = fmt.Errorf("%w: %w", ledger.ErrBridgeTransactionFailed, cause)
	if _, err := p.deadLetters.RecordFailure(ctx, nil, ev.failure(attempts, cause)); err != nil {
		if errors.Is(err, ledger.ErrDeadLetterResolved) {
			p.logs.Warnw("ignoring failure report for resolved dead letter", "transaction_hash", ev.TransactionHash)
			return OutcomeDuplicate, nil
		}
		return OutcomeNone, fmt.Errorf("record dead letter: %w", err)
	}
	return OutcomeDeadLettered, nil
}
