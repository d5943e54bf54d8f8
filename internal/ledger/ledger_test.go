package ledger_test

import (
	"coinledger/internal/db"
	"coinledger/internal/db/dbtest"
	"coinledger/internal/ledger"
	"coinledger/internal/ledger/fake"
	"context"
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ = Describe("Store", func() {
	var (
		store       *ledger.Store
		database    *db.Database
		coordinator *db.Coordinator
		recorder    *fake.Recorder
		ctx         context.Context
		now         time.Time
	)

	balanceOf := func(id string) int64 {
		balance, err := store.Balance(ctx, nil, id)
		Expect(err).NotTo(HaveOccurred())
		return balance
	}

	BeforeEach(func() {
		var err error
		database, err = dbtest.Open(GinkgoT().TempDir(), &ledger.Account{}, &ledger.Entry{})
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		recorder = new(fake.Recorder)
		coordinator = dbtest.Coordinator(database)
		store = ledger.NewStore(zap.NewNop().Sugar(), coordinator,
			ledger.WithClock(func() time.Time { return now }),
			ledger.WithRecorder(recorder))

		_, err = store.OpenAccount(ctx, nil, "treasury", true)
		Expect(err).NotTo(HaveOccurred())
		_, err = store.OpenAccount(ctx, nil, "alice", false)
		Expect(err).NotTo(HaveOccurred())
		_, err = store.OpenAccount(ctx, nil, "bob", false)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(database.Close()).To(Succeed())
	})

	Describe("OpenAccount", func() {
		It("should be idempotent and keep the balance", func() {
			_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
				CreditAccountID: "alice",
				Amount:          10,
				Type:            ledger.EntryReward,
			})
			Expect(err).NotTo(HaveOccurred())

			acc, err := store.OpenAccount(ctx, nil, "alice", false)
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.Balance).To(Equal(int64(10)))
		})

		It("should reject an empty id", func() {
			_, err := store.OpenAccount(ctx, nil, "", false)
			Expect(err).To(MatchError(ledger.ErrInvalidEntry))
		})
	})

	Describe("LockAccount", func() {
		It("should bump the version of an existing account", func() {
			Expect(store.LockAccount(ctx, nil, "alice")).To(Succeed())
			acc, err := store.Account(ctx, nil, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.Version).To(Equal(int64(1)))
			Expect(acc.Balance).To(BeZero())
		})

		It("should report a missing account", func() {
			Expect(store.LockAccount(ctx, nil, "ghost")).To(MatchError(ledger.ErrRecordNotFound))
		})
	})

	Describe("ApplyEntry", func() {
		var (
			req   ledger.EntryRequest
			entry ledger.Entry
			err   error
		)

		JustBeforeEach(func() {
			entry, err = store.ApplyEntry(ctx, nil, req)
		})

		When("crediting from the outside world", func() {
			BeforeEach(func() {
				req = ledger.EntryRequest{
					CreditAccountID: "alice",
					Amount:          25,
					Type:            ledger.EntryReward,
					Meta: ledger.Meta{Reward: &ledger.RewardMeta{
						Action:    "like",
						ContentID: "tweet-1",
					}},
				}
			})

			It("should append one entry and credit the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.ID).NotTo(BeZero())
				Expect(entry.DebitAccountID).To(BeNil())
				Expect(*entry.CreditAccountID).To(Equal("alice"))
				Expect(entry.Subtype).To(Equal("like"))
				Expect(entry.Reference).To(Equal("like:tweet-1"))
				Expect(entry.CreatedAt).To(Equal(now))
				Expect(balanceOf("alice")).To(Equal(int64(25)))
				Expect(recorder.EntryCommittedCallCount()).To(Equal(1))
				typ, amount := recorder.EntryCommittedArgsForCall(0)
				Expect(typ).To(Equal("reward"))
				Expect(amount).To(Equal(int64(25)))
			})
		})

		When("a user transfers more than they hold", func() {
			BeforeEach(func() {
				_, seedErr := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
					CreditAccountID: "alice",
					Amount:          5,
					Type:            ledger.EntryReward,
				})
				Expect(seedErr).NotTo(HaveOccurred())

				req = ledger.EntryRequest{
					DebitAccountID:  "alice",
					CreditAccountID: "bob",
					Amount:          6,
					Type:            ledger.EntryUserTransfer,
				}
			})

			It("should fail with insufficient funds and change nothing", func() {
				Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
				Expect(balanceOf("alice")).To(Equal(int64(5)))
				Expect(balanceOf("bob")).To(BeZero())

				entries, total, histErr := store.History(ctx, ledger.HistoryFilter{AccountID: "bob"})
				Expect(histErr).NotTo(HaveOccurred())
				Expect(total).To(BeZero())
				Expect(entries).To(BeEmpty())
			})
		})

		When("the system account pays out more than it holds", func() {
			BeforeEach(func() {
				req = ledger.EntryRequest{
					DebitAccountID:  "treasury",
					CreditAccountID: "bob",
					Amount:          40,
					Type:            ledger.EntryGiveawayGlobal,
				}
			})

			It("should let the system balance float below zero", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balanceOf("treasury")).To(Equal(int64(-40)))
				Expect(balanceOf("bob")).To(Equal(int64(40)))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				req = ledger.EntryRequest{
					CreditAccountID: "ghost",
					Amount:          1,
					Type:            ledger.EntryReward,
				}
			})

			It("should fail with record not found", func() {
				Expect(err).To(MatchError(ledger.ErrRecordNotFound))
			})
		})

	})

	Describe("ApplyEntry validation", func() {
		DescribeTable("rejecting malformed requests",
			func(r ledger.EntryRequest) {
				_, err := store.ApplyEntry(ctx, nil, r)
				Expect(err).To(MatchError(ledger.ErrInvalidEntry))
				Expect(recorder.EntryCommittedCallCount()).To(BeZero())
			},
			Entry("zero amount", ledger.EntryRequest{CreditAccountID: "alice", Type: ledger.EntryReward}),
			Entry("negative amount", ledger.EntryRequest{CreditAccountID: "alice", Amount: -3, Type: ledger.EntryReward}),
			Entry("no account", ledger.EntryRequest{Amount: 3, Type: ledger.EntryMint}),
			Entry("same account", ledger.EntryRequest{DebitAccountID: "alice", CreditAccountID: "alice", Amount: 3, Type: ledger.EntryUserTransfer}),
			Entry("unknown type", ledger.EntryRequest{CreditAccountID: "alice", Amount: 3, Type: "airdrop"}),
		)
	})

	Describe("atomicity", func() {
		var forced error

		BeforeEach(func() {
			forced = errors.New("forced failure")
			_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
				CreditAccountID: "alice",
				Amount:          100,
				Type:            ledger.EntryReward,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should leave balances and the log untouched when the unit of work fails midway", func() {
			err := coordinator.Run(ctx, nil, func(s *db.Session) error {
				if _, err := store.Transfer(ctx, s, "alice", "bob", 60, ledger.EntryUserTransfer, ledger.Meta{}); err != nil {
					return err
				}
				return forced
			})
			Expect(err).To(MatchError(forced))

			Expect(balanceOf("alice")).To(Equal(int64(100)))
			Expect(balanceOf("bob")).To(BeZero())
			_, total, err := store.History(ctx, ledger.HistoryFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(recorder.EntryCommittedCallCount()).To(Equal(1))
		})

		It("should commit nested entries together with the outer unit of work", func() {
			err := coordinator.Run(ctx, nil, func(s *db.Session) error {
				if _, err := store.Transfer(ctx, s, "alice", "bob", 60, ledger.EntryUserTransfer, ledger.Meta{}); err != nil {
					return err
				}
				_, err := store.Transfer(ctx, s, "bob", "treasury", 10, ledger.EntryNestCoin, ledger.Meta{})
				return err
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(balanceOf("alice")).To(Equal(int64(40)))
			Expect(balanceOf("bob")).To(Equal(int64(50)))
			Expect(balanceOf("treasury")).To(Equal(int64(10)))
			Expect(recorder.EntryCommittedCallCount()).To(Equal(3))
		})
	})

	Describe("write conflicts", func() {
		var (
			retries    int
			rival      func()
			persistent bool
		)

		BeforeEach(func() {
			retries = 0
			rival = func() {}
			persistent = false
			coordinator = db.NewCoordinator(zap.NewNop().Sugar(), database,
				db.WithMaxAttempts(3),
				db.WithBackoff(time.Millisecond, 5*time.Millisecond),
				db.WithRetryHook(func(error) {
					retries++
					rival()
				}))
			store = ledger.NewStore(zap.NewNop().Sugar(), coordinator,
				ledger.WithClock(func() time.Time { return now }))

			_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
				CreditAccountID: "alice",
				Amount:          100,
				Type:            ledger.EntryReward,
			})
			Expect(err).NotTo(HaveOccurred())

			interleaved := false
			Expect(dbtest.BeforeUpdate(database, func(tx *gorm.DB) {
				if interleaved && !persistent {
					return
				}
				if !dbtest.Updates(tx, "accounts", "balance") {
					return
				}
				interleaved = true
				Expect(dbtest.BumpVersion(tx, "alice", "bob")).To(Succeed())
			})).To(Succeed())
		})

		auditClean := func() {
			discrepancies, err := store.Audit(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(discrepancies).To(BeEmpty())
		}

		It("should rerun the unit of work and apply the entry once", func() {
			_, err := store.Transfer(ctx, nil, "alice", "bob", 40, ledger.EntryUserTransfer, ledger.Meta{})
			Expect(err).NotTo(HaveOccurred())
			Expect(retries).To(Equal(1))
			Expect(balanceOf("alice")).To(Equal(int64(60)))
			Expect(balanceOf("bob")).To(Equal(int64(40)))

			_, total, err := store.History(ctx, ledger.HistoryFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			auditClean()
		})

		It("should see the rival's committed debit on the rerun", func() {
			rival = func() {
				rival = func() {}
				_, err := store.Transfer(ctx, nil, "alice", "bob", 70, ledger.EntryUserTransfer, ledger.Meta{})
				Expect(err).NotTo(HaveOccurred())
			}

			_, err := store.Transfer(ctx, nil, "alice", "bob", 50, ledger.EntryUserTransfer, ledger.Meta{})
			Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
			Expect(balanceOf("alice")).To(Equal(int64(30)))
			Expect(balanceOf("bob")).To(Equal(int64(70)))
			auditClean()
		})

		It("should give up once the attempts are spent", func() {
			persistent = true

			_, err := store.Transfer(ctx, nil, "alice", "bob", 10, ledger.EntryUserTransfer, ledger.Meta{})
			Expect(err).To(MatchError(db.ErrTransactionAborted))
			Expect(err).To(MatchError(db.ErrWriteConflict))
			Expect(retries).To(Equal(2))
			Expect(balanceOf("alice")).To(Equal(int64(100)))
			Expect(balanceOf("bob")).To(BeZero())
			auditClean()
		})
	})

	Describe("balance bounds", func() {
		It("should refuse a debit that would wrap a system balance around", func() {
			Expect(database.DB.Model(&ledger.Account{}).
				Where("id = ?", "treasury").
				Update("balance", int64(math.MinInt64+5)).Error).To(Succeed())

			_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
				DebitAccountID: "treasury",
				Amount:         6,
				Type:           ledger.EntryBurn,
			})
			Expect(err).To(MatchError(ledger.ErrInvalidEntry))
			Expect(err).To(MatchError(ContainSubstring("underflow")))
			Expect(balanceOf("treasury")).To(Equal(int64(math.MinInt64 + 5)))
		})

		It("should allow a debit that lands exactly on the lowest balance", func() {
			Expect(database.DB.Model(&ledger.Account{}).
				Where("id = ?", "treasury").
				Update("balance", int64(math.MinInt64+5)).Error).To(Succeed())

			_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
				DebitAccountID: "treasury",
				Amount:         5,
				Type:           ledger.EntryBurn,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(balanceOf("treasury")).To(Equal(int64(math.MinInt64)))
		})
	})

	Describe("Audit", func() {
		BeforeEach(func() {
			requests := []ledger.EntryRequest{
				{CreditAccountID: "treasury", Amount: 1000, Type: ledger.EntryMint},
				{DebitAccountID: "treasury", CreditAccountID: "alice", Amount: 300, Type: ledger.EntryAdminTransfer},
				{DebitAccountID: "alice", CreditAccountID: "bob", Amount: 120, Type: ledger.EntryUserTransfer},
				{CreditAccountID: "bob", Amount: 7, Type: ledger.EntryReward},
				{DebitAccountID: "treasury", Amount: 200, Type: ledger.EntryBurn},
			}
			for _, r := range requests {
				_, err := store.ApplyEntry(ctx, nil, r)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should find every balance equal to credits minus debits", func() {
			discrepancies, err := store.Audit(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(discrepancies).To(BeEmpty())

			Expect(balanceOf("treasury")).To(Equal(int64(500)))
			Expect(balanceOf("alice")).To(Equal(int64(180)))
			Expect(balanceOf("bob")).To(Equal(int64(127)))
		})

		It("should report a balance that drifted from the log", func() {
			err := database.DB.Model(&ledger.Account{}).Where("id = ?", "bob").Update("balance", 1).Error
			Expect(err).NotTo(HaveOccurred())

			discrepancies, err := store.Audit(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(discrepancies).To(ConsistOf(ledger.Discrepancy{
				AccountID: "bob",
				Balance:   1,
				Derived:   127,
			}))
		})
	})

	Describe("History", func() {
		BeforeEach(func() {
			apply := func(r ledger.EntryRequest) {
				_, err := store.ApplyEntry(ctx, nil, r)
				Expect(err).NotTo(HaveOccurred())
			}

			apply(ledger.EntryRequest{CreditAccountID: "alice", Amount: 10, Type: ledger.EntryReward})
			now = now.Add(24 * time.Hour)
			apply(ledger.EntryRequest{DebitAccountID: "alice", CreditAccountID: "bob", Amount: 4, Type: ledger.EntryUserTransfer})
			now = now.Add(24 * time.Hour)
			apply(ledger.EntryRequest{CreditAccountID: "bob", Amount: 3, Type: ledger.EntryReward})
		})

		It("should list an account's entries newest first", func() {
			entries, total, err := store.History(ctx, ledger.HistoryFilter{AccountID: "bob"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Type).To(Equal(ledger.EntryReward))
			Expect(entries[1].Type).To(Equal(ledger.EntryUserTransfer))
		})

		It("should filter by type and date range", func() {
			start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
			entries, total, err := store.History(ctx, ledger.HistoryFilter{
				Types: []ledger.EntryType{ledger.EntryReward},
				From:  start,
				To:    start.Add(48 * time.Hour),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(*entries[0].CreditAccountID).To(Equal("bob"))
		})

		It("should page through results", func() {
			entries, total, err := store.History(ctx, ledger.HistoryFilter{Limit: 1, Offset: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Type).To(Equal(ledger.EntryUserTransfer))
		})
	})

	Describe("CountDistinctReferences", func() {
		BeforeEach(func() {
			reward := func(action, content, tag string) {
				_, err := store.ApplyEntry(ctx, nil, ledger.EntryRequest{
					CreditAccountID: "alice",
					Amount:          1,
					Type:            ledger.EntryReward,
					Meta: ledger.Meta{Reward: &ledger.RewardMeta{
						Action:    action,
						ContentID: content,
						Tag:       tag,
						ThreadID:  "thread-1",
					}},
				})
				Expect(err).NotTo(HaveOccurred())
			}

			reward("hashtag", "post-1", "go")
			reward("hashtag", "post-1", "gopher")
			reward("reply", "reply-1", "")
			reward("reply", "reply-2", "")
		})

		It("should count an action once however many entries it produced", func() {
			n, err := store.CountDistinctReferences(ctx, nil, ledger.ReferenceQuery{
				Type:            ledger.EntryReward,
				CreditAccountID: "alice",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(3)))
		})

		It("should narrow by subtype and parent", func() {
			n, err := store.CountDistinctReferences(ctx, nil, ledger.ReferenceQuery{
				Type:            ledger.EntryReward,
				CreditAccountID: "alice",
				Subtype:         "reply",
				ParentRef:       "thread-1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})

		It("should honor the time window", func() {
			n, err := store.CountDistinctReferences(ctx, nil, ledger.ReferenceQuery{
				Type:            ledger.EntryReward,
				CreditAccountID: "alice",
				From:            now.Add(time.Hour),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})
	})
})
