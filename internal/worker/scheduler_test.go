package worker_test

import (
	"coinledger/internal/bridge"
	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"
	"coinledger/internal/queue"
	"coinledger/internal/reward"
	"coinledger/internal/worker"
	"coinledger/internal/worker/fake"
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		scheduler    *worker.Scheduler
		fakeQueue    *fake.Queue
		fakeRewards  *fake.RewardSettler
		fakeSettings *fake.SettingsSource
		fakeBridge   *fake.BridgeProcessor
		fakeRecorder *fake.Recorder
		ctx          context.Context
		settings     reward.Settings
		testErr      error
		stats        worker.Stats
		err          error
	)

	rewardEnvelope := func(contentID string) queue.Envelope {
		env, err := queue.NewEnvelope(queue.KindReward, reward.Fact{
			ActorAccountID: "alice",
			Action:         reward.ActionLike,
			ContentID:      contentID,
			OccurredAt:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		})
		Expect(err).NotTo(HaveOccurred())
		return env
	}

	bridgeEnvelope := func() queue.Envelope {
		env, err := queue.NewEnvelope(queue.KindBridge, bridge.Event{
			AccountID:       "alice",
			TransactionHash: "0xabc",
			Chain:           "ethereum",
			Direction:       deadletter.DirectionMint,
			NumUnits:        10,
		})
		Expect(err).NotTo(HaveOccurred())
		return env
	}

	BeforeEach(func() {
		fakeQueue = new(fake.Queue)
		fakeRewards = new(fake.RewardSettler)
		fakeSettings = new(fake.SettingsSource)
		fakeBridge = new(fake.BridgeProcessor)
		fakeRecorder = new(fake.Recorder)
		ctx = context.Background()
		testErr = errors.New("test error")
		settings = reward.Settings{Version: 4, Like: 2}

		fakeQueue.ClaimReturns(true, nil)
		fakeSettings.CurrentReturns(settings, nil)
		fakeRewards.SettleReturns([]ledger.Entry{{ID: 1}}, nil)
		fakeBridge.ProcessReturns(bridge.OutcomeSettled, nil)

		scheduler = worker.NewScheduler(zap.NewNop().Sugar(), fakeQueue, fakeRewards, fakeSettings, fakeBridge,
			worker.Config{Interval: 10 * time.Millisecond, BatchSize: 20, MaxAttempts: 3},
			worker.WithRecorder(fakeRecorder))
	})

	Describe("Tick", func() {
		JustBeforeEach(func() {
			stats, err = scheduler.Tick(ctx)
		})

		When("the queue holds reward events", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{rewardEnvelope("tweet-1"), rewardEnvelope("tweet-2")}, nil)
			})

			It("should settle each against one settings snapshot", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats).To(Equal(worker.Stats{Pulled: 2, Handled: 2}))

				_, n := fakeQueue.PullArgsForCall(0)
				Expect(n).To(Equal(20))
				Expect(fakeSettings.CurrentCallCount()).To(Equal(1))
				Expect(fakeRewards.SettleCallCount()).To(Equal(2))

				_, fact, snapshot := fakeRewards.SettleArgsForCall(1)
				Expect(fact.ContentID).To(Equal("tweet-2"))
				Expect(snapshot.Version).To(Equal(int64(4)))

				_, key, ttl := fakeQueue.ClaimArgsForCall(0)
				Expect(key).To(Equal("alice:like:tweet-1"))
				Expect(ttl).To(BeNumerically(">", 0))

				kind, outcome := fakeRecorder.JobHandledArgsForCall(0)
				Expect(kind).To(Equal("reward"))
				Expect(outcome).To(Equal("ok"))
			})
		})

		When("a reward event was already claimed", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{rewardEnvelope("tweet-1")}, nil)
				fakeQueue.ClaimReturns(false, nil)
			})

			It("should skip it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Handled).To(Equal(1))
				Expect(fakeRewards.SettleCallCount()).To(BeZero())
				_, outcome := fakeRecorder.JobHandledArgsForCall(0)
				Expect(outcome).To(Equal("duplicate"))
			})
		})

		When("settlement fails", func() {
			var env queue.Envelope

			BeforeEach(func() {
				env = rewardEnvelope("tweet-1")
				fakeQueue.PullReturns([]queue.Envelope{env}, nil)
				fakeRewards.SettleReturns(nil, testErr)
			})

			It("should release the claim and requeue the event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Requeued).To(Equal(1))

				_, released := fakeQueue.ReleaseArgsForCall(0)
				Expect(released).To(Equal("alice:like:tweet-1"))

				_, requeued, cause := fakeQueue.RequeueArgsForCall(0)
				Expect(requeued.ID).To(Equal(env.ID))
				Expect(cause).To(MatchError(testErr))
				Expect(fakeQueue.EscalateCallCount()).To(BeZero())
			})
		})

		When("the event has used up its attempts", func() {
			BeforeEach(func() {
				env := rewardEnvelope("tweet-1")
				env.Attempts = 2
				fakeQueue.PullReturns([]queue.Envelope{env}, nil)
				fakeRewards.SettleReturns(nil, testErr)
			})

			It("should escalate it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Escalated).To(Equal(1))
				Expect(fakeQueue.RequeueCallCount()).To(BeZero())
				_, _, cause := fakeQueue.EscalateArgsForCall(0)
				Expect(cause).To(MatchError(testErr))
			})
		})

		When("the fact is invalid", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{rewardEnvelope("tweet-1")}, nil)
				fakeRewards.SettleReturns(nil, reward.ErrInvalidFact)
			})

			It("should escalate without retrying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Escalated).To(Equal(1))
				Expect(fakeQueue.RequeueCallCount()).To(BeZero())
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{{
					ID:      "bad",
					Kind:    queue.KindBridge,
					Payload: json.RawMessage(`"not an event"`),
				}}, nil)
			})

			It("should escalate without retrying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Escalated).To(Equal(1))
				Expect(fakeBridge.ProcessCallCount()).To(BeZero())
			})
		})

		When("the kind is unknown", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{{ID: "x", Kind: "airdrop"}}, nil)
			})

			It("should escalate it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Escalated).To(Equal(1))
			})
		})

		When("the queue holds a bridge event", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{bridgeEnvelope()}, nil)
			})

			It("should hand it to the bridge processor", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Handled).To(Equal(1))
				Expect(fakeSettings.CurrentCallCount()).To(BeZero())

				_, ev := fakeBridge.ProcessArgsForCall(0)
				Expect(ev.TransactionHash).To(Equal("0xabc"))
				Expect(ev.NumUnits).To(Equal(int64(10)))

				kind, outcome := fakeRecorder.JobHandledArgsForCall(0)
				Expect(kind).To(Equal("bridge"))
				Expect(outcome).To(Equal("settled"))
			})
		})

		When("the bridge processor fails", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{bridgeEnvelope()}, nil)
				fakeBridge.ProcessReturns(bridge.OutcomeNone, ledger.ErrTransactionAborted)
			})

			It("should requeue the event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Requeued).To(Equal(1))
			})
		})

		When("the settings cannot be read", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns([]queue.Envelope{rewardEnvelope("tweet-1")}, nil)
				fakeSettings.CurrentReturns(reward.Settings{}, testErr)
			})

			It("should requeue reward events", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.Requeued).To(Equal(1))
				Expect(fakeRewards.SettleCallCount()).To(BeZero())
			})
		})

		When("the queue is unreachable", func() {
			BeforeEach(func() {
				fakeQueue.PullReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})

		When("requeueing fails", func() {
			var batch []queue.Envelope

			BeforeEach(func() {
				batch = []queue.Envelope{bridgeEnvelope(), bridgeEnvelope(), bridgeEnvelope()}
				fakeQueue.PullReturns(batch, nil)
				fakeBridge.ProcessReturnsOnCall(0, bridge.OutcomeNone, testErr)
				fakeQueue.RequeueReturns(queue.Envelope{}, errors.New("redis blip"))
			})

			It("should escalate the event and finish the batch", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats).To(Equal(worker.Stats{Pulled: 3, Handled: 2, Escalated: 1}))
				Expect(fakeBridge.ProcessCallCount()).To(Equal(3))
				Expect(fakeQueue.RequeueCallCount()).To(Equal(1))
				Expect(fakeQueue.EscalateCallCount()).To(Equal(1))

				_, escalated, cause := fakeQueue.EscalateArgsForCall(0)
				Expect(escalated.ID).To(Equal(batch[0].ID))
				Expect(cause).To(MatchError(testErr))
			})

			When("escalating fails too", func() {
				BeforeEach(func() {
					fakeQueue.EscalateReturns(errors.New("redis down"))
				})

				It("should still handle the rest of the batch and report the loss", func() {
					Expect(err).To(MatchError(ContainSubstring("redis down")))
					Expect(err).To(MatchError(ContainSubstring(batch[0].ID)))
					Expect(stats).To(Equal(worker.Stats{Pulled: 3, Handled: 2, Dropped: 1}))
					Expect(fakeBridge.ProcessCallCount()).To(Equal(3))
				})
			})
		})
	})

	Describe("Start", func() {
		It("should tick on the interval until stopped", func() {
			scheduler.Start(ctx)
			Eventually(fakeQueue.PullCallCount, "3s").Should(BeNumerically(">=", 1))

			stopped := scheduler.Stop()
			Eventually(stopped.Done()).Should(BeClosed())
		})
	})
})
