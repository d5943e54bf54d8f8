package reward_test

import (
	"coinledger/internal/db"
	"coinledger/internal/db/dbtest"
	"coinledger/internal/ledger"
	"coinledger/internal/reward"
	"coinledger/internal/reward/fake"
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	const actor = "alice"

	var (
		engine   *reward.Engine
		store    *ledger.Store
		database *db.Database
		recorder *fake.Recorder
		settings reward.Settings
		ctx      context.Context
		now      time.Time
	)

	settle := func(fact reward.Fact) []ledger.Entry {
		entries, err := engine.Settle(ctx, fact, settings)
		Expect(err).NotTo(HaveOccurred())
		return entries
	}

	fact := func(action reward.Action, contentID string, tags ...reward.Tag) reward.Fact {
		return reward.Fact{
			ActorAccountID: actor,
			Action:         action,
			Tags:           tags,
			ContentID:      contentID,
			OccurredAt:     now,
		}
	}

	lastOutcome := func() string {
		n := recorder.RewardEvaluatedCallCount()
		Expect(n).NotTo(BeZero())
		return recorder.RewardEvaluatedArgsForCall(n - 1)
	}

	balance := func() int64 {
		b, err := store.Balance(ctx, nil, actor)
		Expect(err).NotTo(HaveOccurred())
		return b
	}

	BeforeEach(func() {
		var err error
		database, err = dbtest.Open(GinkgoT().TempDir(), &ledger.Account{}, &ledger.Entry{})
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		now = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		store = ledger.NewStore(zap.NewNop().Sugar(), dbtest.Coordinator(database),
			ledger.WithClock(func() time.Time { return now }))
		_, err = store.OpenAccount(ctx, nil, actor, false)
		Expect(err).NotTo(HaveOccurred())

		recorder = new(fake.Recorder)
		engine = reward.NewEngine(zap.NewNop().Sugar(), store, reward.WithRecorder(recorder))

		settings = reward.Settings{
			Version:  1,
			Like:     2,
			Bookmark: 0,
			Reply:    3,
			Mentions: reward.TagTable{{Tag: "@coinledger", Reward: 10}},
			Hashtags: reward.TagTable{
				{Tag: "#golang", Reward: 4},
				{Tag: "#gopher", Reward: 6},
				{Tag: "#free", Reward: 0},
			},
			Cashtags:   reward.TagTable{{Tag: "$BTC", Reward: 8}},
			DailyLimit: 100,
		}
	})

	AfterEach(func() {
		Expect(database.Close()).To(Succeed())
	})

	When("the action has a fixed reward", func() {
		It("should mint one reward entry to the actor", func() {
			entries := settle(fact(reward.ActionLike, "tweet-1"))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Type).To(Equal(ledger.EntryReward))
			Expect(entries[0].DebitAccountID).To(BeNil())
			Expect(*entries[0].CreditAccountID).To(Equal(actor))
			Expect(entries[0].Amount).To(Equal(int64(2)))
			Expect(entries[0].Meta.Reward.Action).To(Equal("like"))
			Expect(entries[0].Meta.Reward.ContentID).To(Equal("tweet-1"))
			Expect(balance()).To(Equal(int64(2)))
			Expect(lastOutcome()).To(Equal("settled"))
		})

		It("should grant nothing when the configured amount is zero", func() {
			Expect(settle(fact(reward.ActionBookmark, "tweet-1"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonZeroAmount)))
			Expect(balance()).To(BeZero())
		})
	})

	When("the daily limit is reached", func() {
		BeforeEach(func() {
			settings.DailyLimit = 5
		})

		It("should yield no entries for the sixth action of the UTC day", func() {
			for i := range 5 {
				Expect(settle(fact(reward.ActionLike, fmt.Sprintf("tweet-%d", i)))).To(HaveLen(1))
			}

			Expect(settle(fact(reward.ActionLike, "tweet-5"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonDailyLimit)))
			Expect(balance()).To(Equal(int64(10)))

			now = now.Add(15 * time.Hour)
			Expect(settle(fact(reward.ActionLike, "tweet-6"))).To(HaveLen(1))
		})

		It("should count a multi-tag action once", func() {
			for i := range 4 {
				Expect(settle(fact(reward.ActionLike, fmt.Sprintf("tweet-%d", i)))).To(HaveLen(1))
			}
			tagged := fact(reward.ActionHashtag, "tweet-4",
				reward.Tag{Kind: reward.TagHashtag, Value: "#golang"},
				reward.Tag{Kind: reward.TagHashtag, Value: "#gopher"})
			Expect(settle(tagged)).To(HaveLen(2))

			Expect(settle(fact(reward.ActionLike, "tweet-5"))).To(BeEmpty())
		})
	})

	When("the daily limit is zero", func() {
		BeforeEach(func() {
			settings.DailyLimit = 0
		})

		It("should not cap the actor", func() {
			for i := range 8 {
				Expect(settle(fact(reward.ActionLike, fmt.Sprintf("tweet-%d", i)))).To(HaveLen(1))
			}
			Expect(balance()).To(Equal(int64(16)))
		})
	})

	When("the action is tag based", func() {
		It("should reward every configured tag independently", func() {
			entries := settle(fact(reward.ActionHashtag, "tweet-1",
				reward.Tag{Kind: reward.TagHashtag, Value: "#GoLang"},
				reward.Tag{Kind: reward.TagHashtag, Value: "gopher"},
				reward.Tag{Kind: reward.TagHashtag, Value: "#unlisted"}))

			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Amount).To(Equal(int64(4)))
			Expect(entries[0].Meta.Reward.Tag).To(Equal("golang"))
			Expect(entries[0].Meta.Reward.TagKind).To(Equal("hashtag"))
			Expect(entries[1].Amount).To(Equal(int64(6)))
			Expect(entries[1].Meta.Reward.Tag).To(Equal("gopher"))
			Expect(balance()).To(Equal(int64(10)))
		})

		It("should reward a tag repeated in the same action once", func() {
			entries := settle(fact(reward.ActionHashtag, "tweet-1",
				reward.Tag{Kind: reward.TagHashtag, Value: "#golang"},
				reward.Tag{Kind: reward.TagHashtag, Value: "#GOLANG"}))
			Expect(entries).To(HaveLen(1))
		})

		It("should only look at its own table", func() {
			entries := settle(fact(reward.ActionHashtag, "tweet-1",
				reward.Tag{Kind: reward.TagMention, Value: "@coinledger"}))
			Expect(entries).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonUnknownTag)))
		})

		It("should grant nothing for a configured tag worth zero", func() {
			entries := settle(fact(reward.ActionHashtag, "tweet-1",
				reward.Tag{Kind: reward.TagHashtag, Value: "#free"}))
			Expect(entries).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonZeroAmount)))
		})

		It("should reward a cashtag", func() {
			entries := settle(fact(reward.ActionCashtag, "tweet-1",
				reward.Tag{Kind: reward.TagCashtag, Value: "$btc"}))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Amount).To(Equal(int64(8)))
		})
	})

	When("the actor writes original posts", func() {
		BeforeEach(func() {
			settings.MaxMainPosts = 2
		})

		post := func(contentID string) reward.Fact {
			return fact(reward.ActionPost, contentID,
				reward.Tag{Kind: reward.TagMention, Value: "@coinledger"},
				reward.Tag{Kind: reward.TagCashtag, Value: "$BTC"},
				reward.Tag{Kind: reward.TagHashtag, Value: "#golang"})
		}

		It("should reward matching tags across all tables up to the daily post cap", func() {
			Expect(settle(post("post-1"))).To(HaveLen(3))
			Expect(balance()).To(Equal(int64(22)))
			Expect(settle(post("post-2"))).To(HaveLen(3))

			Expect(settle(post("post-3"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonMaxMainPosts)))

			now = now.Add(24 * time.Hour)
			Expect(settle(post("post-4"))).To(HaveLen(3))
		})
	})

	When("the actor continues threads", func() {
		BeforeEach(func() {
			settings.MaxThreads = 1
		})

		thread := func(threadID, contentID string) reward.Fact {
			f := fact(reward.ActionThread, contentID, reward.Tag{Kind: reward.TagHashtag, Value: "#gopher"})
			f.ThreadID = threadID
			return f
		}

		It("should cap rewards per thread", func() {
			Expect(settle(thread("t-1", "c-1"))).To(HaveLen(1))
			Expect(settle(thread("t-1", "c-2"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonMaxThreads)))
			Expect(settle(thread("t-2", "c-3"))).To(HaveLen(1))
		})
	})

	When("the actor replies", func() {
		BeforeEach(func() {
			settings.ReplyLimit = 2
		})

		reply := func(threadID, contentID string) reward.Fact {
			f := fact(reward.ActionReply, contentID)
			f.ThreadID = threadID
			return f
		}

		It("should cap rewarded replies per thread", func() {
			Expect(settle(reply("t-1", "r-1"))).To(HaveLen(1))
			Expect(settle(reply("t-1", "r-2"))).To(HaveLen(1))
			Expect(settle(reply("t-1", "r-3"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonReplyLimit)))

			entries := settle(reply("t-2", "r-4"))
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ParentRef).To(Equal("t-2"))
			Expect(balance()).To(Equal(int64(9)))
		})
	})

	When("rewards have a start date", func() {
		BeforeEach(func() {
			start := now.Add(time.Hour)
			settings.RewardStartDate = &start
			settings.WhitelistedTweetIDs = []string{"tweet-vip"}
		})

		It("should ignore activity before it", func() {
			Expect(settle(fact(reward.ActionLike, "tweet-1"))).To(BeEmpty())
			Expect(lastOutcome()).To(Equal(string(reward.ReasonBeforeStart)))
		})

		It("should let whitelisted content through", func() {
			Expect(settle(fact(reward.ActionLike, "tweet-vip"))).To(HaveLen(1))
		})

		It("should accept activity after it", func() {
			f := fact(reward.ActionLike, "tweet-1")
			f.OccurredAt = now.Add(2 * time.Hour)
			Expect(settle(f)).To(HaveLen(1))
		})
	})

	Describe("Evaluate", func() {
		It("should explain a rejection without writing anything", func() {
			settings.DailyLimit = 1
			Expect(settle(fact(reward.ActionLike, "tweet-1"))).To(HaveLen(1))

			eval, err := engine.Evaluate(ctx, nil, fact(reward.ActionLike, "tweet-2"), settings)
			Expect(err).NotTo(HaveOccurred())
			Expect(eval.Eligible()).To(BeFalse())
			Expect(eval.Reason).To(Equal(reward.ReasonDailyLimit))
			Expect(balance()).To(Equal(int64(2)))
		})

		It("should list the awards of an eligible fact", func() {
			eval, err := engine.Evaluate(ctx, nil, fact(reward.ActionMention, "tweet-1",
				reward.Tag{Kind: reward.TagMention, Value: "@CoinLedger"}), settings)
			Expect(err).NotTo(HaveOccurred())
			Expect(eval.Eligible()).To(BeTrue())
			Expect(eval.Awards).To(ConsistOf(reward.Award{Amount: 10, TagKind: reward.TagMention, Tag: "coinledger"}))
		})
	})

	It("should refuse an invalid fact", func() {
		f := fact(reward.ActionReply, "reply-1")
		_, err := engine.Settle(ctx, f, settings)
		Expect(err).To(MatchError(reward.ErrInvalidFact))
		Expect(lastOutcome()).To(Equal("failed"))
		Expect(balance()).To(BeZero())
	})

	It("should fail for an unknown actor", func() {
		f := fact(reward.ActionLike, "tweet-1")
		f.ActorAccountID = "ghost"
		_, err := engine.Settle(ctx, f, settings)
		Expect(err).To(MatchError(ledger.ErrRecordNotFound))
	})
})
