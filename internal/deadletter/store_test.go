package deadletter_test

import (
	"coinledger/internal/db"
	"coinledger/internal/db/dbtest"
	"coinledger/internal/deadletter"
	"coinledger/internal/deadletter/fake"
	"coinledger/internal/ledger"
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Store", func() {
	const hash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

	var (
		store       *deadletter.Store
		database    *db.Database
		coordinator *db.Coordinator
		recorder    *fake.Recorder
		ctx         context.Context
		now         time.Time
		failure     deadletter.Failure
	)

	BeforeEach(func() {
		var err error
		database, err = dbtest.Open(GinkgoT().TempDir(), &deadletter.Transaction{})
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		recorder = new(fake.Recorder)
		coordinator = dbtest.Coordinator(database)
		store = deadletter.NewStore(zap.NewNop().Sugar(), coordinator,
			deadletter.WithClock(func() time.Time { return now }),
			deadletter.WithRecorder(recorder))

		failure = deadletter.Failure{
			AccountID:       "alice",
			TransactionHash: hash,
			Chain:           "ethereum",
			Direction:       deadletter.DirectionMint,
			NumUnits:        150,
			Amount:          decimal.RequireFromString("1500000000000000000000"),
			Attempts:        3,
			Error:           "receipt pending",
			Meta:            map[string]any{"source": "bridge"},
		}
	})

	AfterEach(func() {
		Expect(database.Close()).To(Succeed())
	})

	Describe("RecordFailure", func() {
		It("should park the transaction for manual review", func() {
			record, err := store.RecordFailure(ctx, nil, failure)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).NotTo(BeZero())
			Expect(record.NeedsManualReview).To(BeTrue())
			Expect(record.IsResolved).To(BeFalse())

			stored, err := store.Get(ctx, nil, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Amount.String()).To(Equal("1500000000000000000000"))
			Expect(stored.NumUnits).To(Equal(int64(150)))
			Expect(stored.OriginalAttempts).To(Equal(3))
			Expect(stored.OriginalMeta).To(HaveKeyWithValue("source", "bridge"))
			Expect(stored.FailedAt.Equal(now)).To(BeTrue())
			Expect(recorder.DeadLetterRecordedCallCount()).To(Equal(1))
			Expect(recorder.DeadLetterRecordedArgsForCall(0)).To(Equal("ethereum"))
		})

		It("should keep one row per transaction hash", func() {
			_, err := store.RecordFailure(ctx, nil, failure)
			Expect(err).NotTo(HaveOccurred())

			now = now.Add(time.Hour)
			failure.Attempts = 2
			failure.Error = "transaction reverted"
			record, err := store.RecordFailure(ctx, nil, failure)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.OriginalAttempts).To(Equal(5))

			var count int64
			Expect(database.DB.Model(&deadletter.Transaction{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))

			stored, err := store.Get(ctx, nil, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.OriginalAttempts).To(Equal(5))
			Expect(stored.LastError).To(Equal("transaction reverted"))
			Expect(stored.FailedAt.Equal(now)).To(BeTrue())
			Expect(recorder.DeadLetterRecordedCallCount()).To(Equal(2))
		})

		It("should reject an incomplete report", func() {
			failure.TransactionHash = ""
			_, err := store.RecordFailure(ctx, nil, failure)
			Expect(err).To(HaveOccurred())
			Expect(recorder.DeadLetterRecordedCallCount()).To(BeZero())
		})

		It("should not count a report whose unit of work rolled back", func() {
			forced := errors.New("forced")
			err := coordinator.Run(ctx, nil, func(s *db.Session) error {
				if _, err := store.RecordFailure(ctx, s, failure); err != nil {
					return err
				}
				return forced
			})
			Expect(err).To(MatchError(forced))

			_, err = store.Get(ctx, nil, hash)
			Expect(err).To(MatchError(ledger.ErrRecordNotFound))
			Expect(recorder.DeadLetterRecordedCallCount()).To(BeZero())
		})
	})

	Describe("lifecycle", func() {
		BeforeEach(func() {
			_, err := store.RecordFailure(ctx, nil, failure)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should record the review", func() {
			record, err := store.Review(ctx, hash, deadletter.Review{By: "ops-1", Notes: "confirmed on explorer"})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ReviewedBy).To(Equal("ops-1"))

			stored, err := store.Get(ctx, nil, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ReviewNotes).To(Equal("confirmed on explorer"))
			Expect(stored.ReviewedAt).NotTo(BeNil())
			Expect(stored.NeedsManualReview).To(BeFalse())
			Expect(stored.IsResolved).To(BeFalse())
		})

		It("should require a reviewer", func() {
			_, err := store.Review(ctx, hash, deadletter.Review{Notes: "anonymous"})
			Expect(err).To(HaveOccurred())
		})

		When("the record is resolved", func() {
			BeforeEach(func() {
				record, err := store.MarkResolved(ctx, nil, hash, "ops-1", true)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.IsResolved).To(BeTrue())
				Expect(record.Honored).To(BeTrue())
			})

			It("should be terminal", func() {
				_, err := store.Review(ctx, hash, deadletter.Review{By: "ops-2"})
				Expect(err).To(MatchError(ledger.ErrDeadLetterResolved))

				_, err = store.MarkResolved(ctx, nil, hash, "ops-2", false)
				Expect(err).To(MatchError(ledger.ErrDeadLetterResolved))

				_, err = store.RecordFailure(ctx, nil, failure)
				Expect(err).To(MatchError(ledger.ErrDeadLetterResolved))

				stored, err := store.Get(ctx, nil, hash)
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.ResolvedBy).To(Equal("ops-1"))
				Expect(stored.Honored).To(BeTrue())
				Expect(stored.OriginalAttempts).To(Equal(3))
			})

			It("should drop out of the unresolved list", func() {
				records, err := store.ListUnresolved(ctx, 10)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})
	})

	Describe("ListUnresolved", func() {
		It("should list open records oldest first", func() {
			second := failure
			second.TransactionHash = "0xbeef"
			second.AccountID = "bob"

			now = now.Add(time.Minute)
			_, err := store.RecordFailure(ctx, nil, second)
			Expect(err).NotTo(HaveOccurred())
			now = now.Add(time.Minute)
			_, err = store.RecordFailure(ctx, nil, failure)
			Expect(err).NotTo(HaveOccurred())

			records, err := store.ListUnresolved(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].TransactionHash).To(Equal("0xbeef"))
			Expect(records[1].TransactionHash).To(Equal(hash))
		})
	})

	It("should report a missing record", func() {
		_, err := store.Get(ctx, nil, "0xmissing")
		Expect(err).To(MatchError(ledger.ErrRecordNotFound))

		_, err = store.MarkResolved(ctx, nil, "0xmissing", "ops-1", false)
		Expect(err).To(MatchError(ledger.ErrRecordNotFound))
	})
})
