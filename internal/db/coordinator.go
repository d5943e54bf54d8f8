package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrWriteConflict reports a lost optimistic-concurrency race. The whole unit of work is retried.
	ErrWriteConflict = errors.New("write conflict")
	// ErrTransactionAborted is returned once conflicts have exhausted the retry budget.
	ErrTransactionAborted = errors.New("transaction aborted")
)

const (
	defaultMaxAttempts    = 5
	defaultInitialBackoff = 20 * time.Millisecond
	defaultMaxBackoff     = 500 * time.Millisecond

	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

type Coordinator struct {
	logs           *zap.SugaredLogger
	db             *Database
	maxAttempts    uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
	onRetry        func(err error)
}

type CoordinatorOption func(*Coordinator)

func WithMaxAttempts(n uint) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

func WithBackoff(initial, max time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.initialBackoff = initial
		c.maxBackoff = max
	}
}

// WithRetryHook registers a callback invoked before every retry.
func WithRetryHook(fn func(err error)) CoordinatorOption {
	return func(c *Coordinator) {
		c.onRetry = fn
	}
}

func NewCoordinator(logger *zap.SugaredLogger, database *Database, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		logs:           logger,
		db:             database,
		maxAttempts:    defaultMaxAttempts,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) Database() *Database {
	return c.db
}

// Run executes work atomically. See RunInTransaction.
func (c *Coordinator) Run(ctx context.Context, outer *Session, work func(*Session) error) error {
	_, err := RunInTransaction(ctx, c, outer, func(s *Session) (struct{}, error) {
		return struct{}{}, work(s)
	})
	return err
}

// RunInTransaction commits everything work does through its Session together or
// not at all. When outer is an active session the work joins it and the caller
// stays responsible for the commit. Retryable storage conflicts rerun the whole
// work function with exponential backoff.
func RunInTransaction[T any](ctx context.Context, c *Coordinator, outer *Session, work func(*Session) (T, error)) (T, error) {
	if outer != nil {
		return work(outer)
	}

	// a commit that has started must not be torn down by the caller's cancellation,
	// so cancellation is only honored between attempts.
	txCtx := context.WithoutCancel(ctx)

	attempts := 0
	operation := func() (T, error) {
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, backoff.Permanent(err)
		}
		attempts++

		var (
			out  T
			sess *Session
		)
		err := c.db.DB.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
			sess = &Session{tx: tx}
			res, err := work(sess)
			if err != nil {
				return err
			}
			out = res
			return nil
		})
		if err != nil {
			if IsRetryable(err) {
				return zero, err
			}
			return zero, backoff.Permanent(err)
		}
		sess.runAfterCommit()
		return out, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialBackoff
	policy.MaxInterval = c.maxBackoff

	res, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(c.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logs.Warnw("retrying transaction after conflict",
				"error", err,
				"attempt", attempts,
				"next_backoff", next)
			if c.onRetry != nil {
				c.onRetry(err)
			}
		}),
	)
	if err != nil {
		if IsRetryable(err) {
			return res, fmt.Errorf("%w after %d attempts: %w", ErrTransactionAborted, attempts, err)
		}
		return res, err
	}

	return res, nil
}

// IsRetryable reports whether err is a transient conflict worth rerunning the unit of work for.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrWriteConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return true
		}
	}

	return false
}
