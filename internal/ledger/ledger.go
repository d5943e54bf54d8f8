package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/db"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Store is the ledger log together with the account balances derived from it.
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

func (s *Store) Coordinator() *db.Coordinator {
	return s.coordinator
}

// Now is the clock entries are stamped with.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

// OpenAccount creates the account if it does not exist yet and returns it.
func (s *Store) OpenAccount(ctx context.Context, sess *db.Session, id string, isSystem bool) (Account, error) {
	if id == "" {
		return Account{}, fmt.Errorf("open account: empty id: %w", ErrInvalidEntry)
	}

	return db.RunInTransaction(ctx, s.coordinator, sess, func(tx *db.Session) (Account, error) {
		now := s.Now()
		acc := Account{
			ID:        id,
			IsSystem:  isSystem,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := tx.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&acc).Error
		if err != nil {
			return Account{}, fmt.Errorf("create account %q: %w", id, err)
		}
		return s.Account(ctx, tx, id)
	})
}

func (s *Store) Account(ctx context.Context, sess *db.Session, id string) (Account, error) {
	var acc Account
	err := s.db.Conn(ctx, sess).Where("id = ?", id).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, fmt.Errorf("account %q: %w", id, ErrRecordNotFound)
		}
		return Account{}, fmt.Errorf("get account %q: %w", id, err)
	}
	return acc, nil
}

func (s *Store) Balance(ctx context.Context, sess *db.Session, id string) (int64, error) {
	acc, err := s.Account(ctx, sess, id)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// LockAccount takes the account's row write lock for the rest of the unit of
// work. Checks derived from the ledger that must hold until commit take it first.
func (s *Store) LockAccount(ctx context.Context, sess *db.Session, id string) error {
	res := s.db.Conn(ctx, sess).Model(&Account{}).
		Where("id = ?", id).
		Update("version", gorm.Expr("version + 1"))
	if res.Error != nil {
		return fmt.Errorf("lock account %q: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account %q: %w", id, ErrRecordNotFound)
	}
	return nil
}

// ApplyEntry appends one entry and moves its amount between the two sides in a
// single unit of work. Non-system accounts may never go below zero.
func (s *Store) ApplyEntry(ctx context.Context, sess *db.Session, req EntryRequest) (Entry, error) {
	if err := req.validate(); err != nil {
		return Entry{}, err
	}

	return db.RunInTransaction(ctx, s.coordinator, sess, func(tx *db.Session) (Entry, error) {
		if req.DebitAccountID != "" {
			if err := s.move(ctx, tx, req.DebitAccountID, -req.Amount); err != nil {
				return Entry{}, fmt.Errorf("debit: %w", err)
			}
		}
		if req.CreditAccountID != "" {
			if err := s.move(ctx, tx, req.CreditAccountID, req.Amount); err != nil {
				return Entry{}, fmt.Errorf("credit: %w", err)
			}
		}

		entry := Entry{
			DebitAccountID:  optional(req.DebitAccountID),
			CreditAccountID: optional(req.CreditAccountID),
			Amount:          req.Amount,
			Type:            req.Type,
			Meta:            req.Meta,
			CreatedAt:       s.Now(),
		}
		entry.Subtype, entry.Reference, entry.ParentRef = req.Meta.index()

		if err := tx.DB(ctx).Create(&entry).Error; err != nil {
			return Entry{}, fmt.Errorf("append ledger entry: %w", err)
		}

		tx.AfterCommit(func() {
			s.recorder.EntryCommitted(string(entry.Type), entry.Amount)
		})

		return entry, nil
	})
}

// Transfer moves amount between two existing accounts.
func (s *Store) Transfer(ctx context.Context, sess *db.Session, from, to string, amount int64, typ EntryType, meta Meta) (Entry, error) {
	if from == "" || to == "" {
		return Entry{}, fmt.Errorf("transfer needs both accounts: %w", ErrInvalidEntry)
	}
	return s.ApplyEntry(ctx, sess, EntryRequest{
		DebitAccountID:  from,
		CreditAccountID: to,
		Amount:          amount,
		Type:            typ,
		Meta:            meta,
	})
}

func (s *Store) move(ctx context.Context, tx *db.Session, id string, delta int64) error {
	acc, err := s.Account(ctx, tx, id)
	if err != nil {
		return err
	}

	next := acc.Balance + delta
	if delta > 0 && next < acc.Balance {
		return fmt.Errorf("account %q balance overflow: %w", id, ErrInvalidEntry)
	}
	if delta < 0 && next > acc.Balance {
		return fmt.Errorf("account %q balance underflow: %w", id, ErrInvalidEntry)
	}
	if next < 0 && !acc.IsSystem {
		return fmt.Errorf("account %q has %d, needs %d: %w", id, acc.Balance, -delta, ErrInsufficientFunds)
	}

	res := tx.DB(ctx).Model(&Account{}).
		Where("id = ? AND version = ?", id, acc.Version).
		Updates(map[string]any{
			"balance":    next,
			"version":    acc.Version + 1,
			"updated_at": s.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("update account %q: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account %q changed concurrently: %w", id, db.ErrWriteConflict)
	}

	return nil
}

// History returns entries touching the filter's account, newest first, and the
// total number of matching entries.
func (s *Store) History(ctx context.Context, filter HistoryFilter) ([]Entry, int64, error) {
	q := s.db.Conn(ctx, nil).Model(&Entry{})
	if filter.AccountID != "" {
		q = q.Where("(debit_account_id = ? OR credit_account_id = ?)", filter.AccountID, filter.AccountID)
	}
	if len(filter.Types) > 0 {
		q = q.Where("type IN ?", filter.Types)
	}
	if !filter.From.IsZero() {
		q = q.Where("created_at >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		q = q.Where("created_at < ?", filter.To.UTC())
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries := []Entry{}
	err := q.Order("id DESC").Limit(limit).Offset(max(filter.Offset, 0)).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}

	return entries, total, nil
}

// CountDistinctReferences counts distinct entry references matching q. Reward
// caps are derived from it so the ledger stays the only source of truth.
func (s *Store) CountDistinctReferences(ctx context.Context, sess *db.Session, q ReferenceQuery) (int64, error) {
	tx := s.db.Conn(ctx, sess).Model(&Entry{}).
		Where("type = ? AND credit_account_id = ?", q.Type, q.CreditAccountID)
	if q.Subtype != "" {
		tx = tx.Where("subtype = ?", q.Subtype)
	}
	if q.ParentRef != "" {
		tx = tx.Where("parent_ref = ?", q.ParentRef)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From.UTC())
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To.UTC())
	}

	var n int64
	if err := tx.Distinct("reference").Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count references: %w", err)
	}
	return n, nil
}

// HasReference reports whether any entry carries the reference.
func (s *Store) HasReference(ctx context.Context, sess *db.Session, reference string) (bool, error) {
	var n int64
	err := s.db.Conn(ctx, sess).Model(&Entry{}).Where("reference = ?", reference).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("look up reference %q: %w", reference, err)
	}
	return n > 0, nil
}

type accountSum struct {
	AccountID string
	Total     int64
}

// Audit recomputes every balance from the full ledger and reports the accounts
// whose cached balance disagrees.
func (s *Store) Audit(ctx context.Context) ([]Discrepancy, error) {
	conn := s.db.Conn(ctx, nil)

	var credits, debits []accountSum
	err := conn.Model(&Entry{}).
		Select("credit_account_id AS account_id, SUM(amount) AS total").
		Where("credit_account_id IS NOT NULL").
		Group("credit_account_id").
		Scan(&credits).Error
	if err != nil {
		return nil, fmt.Errorf("sum credits: %w", err)
	}
	err = conn.Model(&Entry{}).
		Select("debit_account_id AS account_id, SUM(amount) AS total").
		Where("debit_account_id IS NOT NULL").
		Group("debit_account_id").
		Scan(&debits).Error
	if err != nil {
		return nil, fmt.Errorf("sum debits: %w", err)
	}

	derived := make(map[string]int64, len(credits))
	for _, c := range credits {
		derived[c.AccountID] += c.Total
	}
	for _, d := range debits {
		derived[d.AccountID] -= d.Total
	}

	var accounts []Account
	if err := conn.Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var out []Discrepancy
	for _, acc := range accounts {
		if acc.Balance != derived[acc.ID] {
			out = append(out, Discrepancy{
				AccountID: acc.ID,
				Balance:   acc.Balance,
				Derived:   derived[acc.ID],
			})
		}
		delete(derived, acc.ID)
	}
	for id, total := range derived {
		out = append(out, Discrepancy{AccountID: id, Derived: total})
	}

	if len(out) > 0 {
		s.logs.Errorw("ledger conservation check failed", "discrepancies", len(out))
	}
	return out, nil
}

func (r EntryRequest) validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("amount %d must be positive: %w", r.Amount, ErrInvalidEntry)
	}
	if r.DebitAccountID == "" && r.CreditAccountID == "" {
		return fmt.Errorf("entry needs at least one account: %w", ErrInvalidEntry)
	}
	if r.DebitAccountID == r.CreditAccountID {
		return fmt.Errorf("debit and credit are both %q: %w", r.DebitAccountID, ErrInvalidEntry)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("unknown entry type %q: %w", r.Type, ErrInvalidEntry)
	}
	return nil
}
