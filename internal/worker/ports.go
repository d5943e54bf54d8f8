package worker

import (
	"context"
	"time"

	"coinledger/internal/bridge"
	"coinledger/internal/db"
	"coinledger/internal/ledger"
	"coinledger/internal/queue"
	"coinledger/internal/reward"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Queue . Queue
type Queue interface {
	Pull(ctx context.Context, n int) ([]queue.Envelope, error)
	Requeue(ctx context.Context, env queue.Envelope, cause error) (queue.Envelope, error)
	Escalate(ctx context.Context, env queue.Envelope, cause error) error
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

//counterfeiter:generate -o fake -fake-name RewardSettler . RewardSettler
type RewardSettler interface {
	Settle(ctx context.Context, fact reward.Fact, settings reward.Settings) ([]ledger.Entry, error)
}

//counterfeiter:generate -o fake -fake-name SettingsSource . SettingsSource
type SettingsSource interface {
	Current(ctx context.Context, sess *db.Session) (reward.Settings, error)
}

//counterfeiter:generate -o fake -fake-name BridgeProcessor . BridgeProcessor
type BridgeProcessor interface {
	Process(ctx context.Context, ev bridge.Event) (bridge.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	JobHandled(kind, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) JobHandled(string, string) {}
