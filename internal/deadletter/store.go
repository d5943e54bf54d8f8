package deadletter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/db"
	"coinledger/internal/ledger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 100

type Store struct {
	logs        *zap.SugaredLogger
	db          *db.Database
	coordinator *db.Coordinator
	recorder    Recorder
	now         func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

func NewStore(logger *zap.SugaredLogger, coordinator *db.Coordinator, opts ...Option) *Store {
	s := &Store{
		logs:        logger,
		db:          coordinator.Database(),
		coordinator: coordinator,
		recorder:    nopRecorder{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordFailure parks a failed bridge transaction. The transaction hash is the
// idempotency key: a repeated report adds its attempts to the existing record
// and replaces the last error instead of creating a second row.
func (s *Store) RecordFailure(ctx context.Context, sess *db.Session, f Failure) (Transaction, error) {
	if err := f.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("validate failure: %w", err)
	}

	record, err := db.RunInTransaction(ctx, s.coordinator, sess, func(tx *db.Session) (Transaction, error) {
		now := s.now().UTC()

		existing, err := s.Get(ctx, tx, f.TransactionHash)
		switch {
		case errors.Is(err, ledger.ErrRecordNotFound):
			record := Transaction{
				AccountID:         f.AccountID,
				TransactionHash:   f.TransactionHash,
				Chain:             f.Chain,
				Direction:         f.Direction,
				NumUnits:          f.NumUnits,
				Amount:            f.Amount,
				OriginalAttempts:  f.Attempts,
				LastError:         f.Error,
				FailedAt:          now,
				NeedsManualReview: true,
				OriginalMeta:      f.Meta,
			}
			if err := tx.DB(ctx).Create(&record).Error; err != nil {
				return Transaction{}, fmt.Errorf("create dead letter: %w", err)
			}
			tx.AfterCommit(func() { s.recorder.DeadLetterRecorded(f.Chain) })
			return record, nil
		case err != nil:
			return Transaction{}, err
		}

		if existing.IsResolved {
			return Transaction{}, fmt.Errorf("dead letter %s: %w", f.TransactionHash, ledger.ErrDeadLetterResolved)
		}

		existing.OriginalAttempts += f.Attempts
		existing.LastError = f.Error
		existing.FailedAt = now
		existing.NeedsManualReview = true
		if f.Meta != nil {
			existing.OriginalMeta = f.Meta
		}

		res := tx.DB(ctx).Model(&existing).
			Where("is_resolved = ?", false).
			Select("original_attempts", "last_error", "failed_at", "needs_manual_review", "original_meta").
			Updates(&existing)
		if res.Error != nil {
			return Transaction{}, fmt.Errorf("update dead letter: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return Transaction{}, fmt.Errorf("dead letter %s changed concurrently: %w", f.TransactionHash, db.ErrWriteConflict)
		}
		tx.AfterCommit(func() { s.recorder.DeadLetterRecorded(f.Chain) })
		return existing, nil
	})
	if err != nil {
		return Transaction{}, err
	}

	s.logs.Warnw("bridge transaction dead-lettered",
		"transaction_hash", record.TransactionHash,
		"account_id", record.AccountID,
		"chain", record.Chain,
		"attempts", record.OriginalAttempts,
		"error", record.LastError)
	return record, nil
}

func (s *Store) Get(ctx context.Context, sess *db.Session, hash string) (Transaction, error) {
	var record Transaction
	err := s.db.Conn(ctx, sess).Where("transaction_hash = ?", hash).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Transaction{}, fmt.Errorf("dead letter %s: %w", hash, ledger.ErrRecordNotFound)
		}
		return Transaction{}, fmt.Errorf("get dead letter %s: %w", hash, err)
	}
	return record, nil
}

// Review records a reviewer's decision notes. It does not settle anything.
func (s *Store) Review(ctx context.Context, hash string, r Review) (Transaction, error) {
	if err := r.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("validate review: %w", err)
	}

	return db.RunInTransaction(ctx, s.coordinator, nil, func(tx *db.Session) (Transaction, error) {
		record, err := s.Get(ctx, tx, hash)
		if err != nil {
			return Transaction{}, err
		}
		if record.IsResolved {
			return Transaction{}, fmt.Errorf("review dead letter %s: %w", hash, ledger.ErrDeadLetterResolved)
		}

		now := s.now().UTC()
		record.ReviewedBy = r.By
		record.ReviewedAt = &now
		record.ReviewNotes = r.Notes
		record.NeedsManualReview = false

		err = s.transition(ctx, tx, record.ID, map[string]any{
			"reviewed_by":         record.ReviewedBy,
			"reviewed_at":         now,
			"review_notes":        record.ReviewNotes,
			"needs_manual_review": false,
		})
		if err != nil {
			return Transaction{}, fmt.Errorf("review dead letter %s: %w", hash, err)
		}

		s.logs.Infow("dead letter reviewed", "transaction_hash", hash, "reviewed_by", r.By)
		return record, nil
	})
}

// MarkResolved closes the record for good. Pass the session of the unit of
// work that settled the transaction so both commit together.
func (s *Store) MarkResolved(ctx context.Context, sess *db.Session, hash, by string, honored bool) (Transaction, error) {
	if by == "" {
		return Transaction{}, fmt.Errorf("resolve dead letter %s: resolver required", hash)
	}

	return db.RunInTransaction(ctx, s.coordinator, sess, func(tx *db.Session) (Transaction, error) {
		record, err := s.Get(ctx, tx, hash)
		if err != nil {
			return Transaction{}, err
		}
		if record.IsResolved {
			return Transaction{}, fmt.Errorf("resolve dead letter %s: %w", hash, ledger.ErrDeadLetterResolved)
		}

		now := s.now().UTC()
		record.IsResolved = true
		record.ResolvedAt = &now
		record.ResolvedBy = by
		record.Honored = honored
		record.NeedsManualReview = false

		err = s.transition(ctx, tx, record.ID, map[string]any{
			"is_resolved":         true,
			"resolved_at":         now,
			"resolved_by":         by,
			"honored":             honored,
			"needs_manual_review": false,
		})
		if err != nil {
			return Transaction{}, fmt.Errorf("resolve dead letter %s: %w", hash, err)
		}

		s.logs.Infow("dead letter resolved", "transaction_hash", hash, "resolved_by", by, "honored", honored)
		return record, nil
	})
}

// transition updates a record only while it is still open.
func (s *Store) transition(ctx context.Context, tx *db.Session, id uint64, fields map[string]any) error {
	res := tx.DB(ctx).Model(&Transaction{}).
		Where("id = ? AND is_resolved = ?", id, false).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ledger.ErrDeadLetterResolved
	}
	return nil
}

// ListUnresolved returns open records, oldest failure first.
func (s *Store) ListUnresolved(ctx context.Context, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	records := []Transaction{}
	err := s.db.Conn(ctx, nil).
		Where("is_resolved = ?", false).
		Order("failed_at ASC, id ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list unresolved dead letters: %w", err)
	}
	return records, nil
}
