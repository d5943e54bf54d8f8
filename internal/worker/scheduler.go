package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinledger/internal/bridge"
	"coinledger/internal/queue"
	"coinledger/internal/reward"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultClaimTTL = 72 * time.Hour

	outcomeOK         = "ok"
	outcomeNotGranted = "not_granted"
	outcomeDuplicate  = "duplicate"
	outcomeRequeued   = "requeued"
	outcomeEscalated  = "escalated"
)

var errUnknownKind = errors.New("unknown envelope kind")

type Config struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

// Stats summarizes one tick.
type Stats struct {
	Pulled    int
	Handled   int
	Requeued  int
	Escalated int
	Dropped   int
}

// Scheduler drains the event queue on a fixed interval and hands every event
// to the reward engine or the bridge processor. It holds no business state.
type Scheduler struct {
	logs     *zap.SugaredLogger
	cron     *cron.Cron
	queue    Queue
	rewards  RewardSettler
	settings SettingsSource
	bridge   BridgeProcessor
	recorder Recorder
	config   Config
	claimTTL time.Duration
}

type Option func(*Scheduler)

func WithRecorder(r Recorder) Option {
	return func(s *Scheduler) {
		s.recorder = r
	}
}

func WithClaimTTL(ttl time.Duration) Option {
	return func(s *Scheduler) {
		s.claimTTL = ttl
	}
}

func NewScheduler(
	logger *zap.SugaredLogger,
	q Queue,
	rewards RewardSettler,
	settings SettingsSource,
	bridge BridgeProcessor,
	config Config,
	opts ...Option,
) *Scheduler {
	cronLogger := cronLogger{logs: logger}
	s := &Scheduler{
		logs: logger,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		queue:    q,
		rewards:  rewards,
		settings: settings,
		bridge:   bridge,
		recorder: nopRecorder{},
		config:   config,
		claimTTL: defaultClaimTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs Tick every interval until ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Schedule(cron.Every(s.config.Interval), cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.Tick(ctx); err != nil {
			s.logs.Errorw("worker tick failed", "error", err)
		}
	}))
	s.cron.Start()
	s.logs.Infow("worker started", "interval", s.config.Interval, "batch_size", s.config.BatchSize)
}

// Stop stops scheduling and returns a context that is done once the running tick finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Tick pulls one batch and dispatches every event in it.
func (s *Scheduler) Tick(ctx context.Context) (Stats, error) {
	envs, err := s.queue.Pull(ctx, s.config.BatchSize)
	if err != nil {
		return Stats{}, fmt.Errorf("pull events: %w", err)
	}
	stats := Stats{Pulled: len(envs)}

	var (
		settings      reward.Settings
		settingsReady bool
		failures      []error
	)
	for _, env := range envs {
		var (
			outcome string
			err     error
		)
		switch env.Kind {
		case queue.KindReward:
			if !settingsReady {
				settings, err = s.settings.Current(ctx, nil)
				if err != nil {
					break
				}
				settingsReady = true
			}
			outcome, err = s.handleReward(ctx, env, settings)
		case queue.KindBridge:
			outcome, err = s.handleBridge(ctx, env)
		default:
			err = fmt.Errorf("%w: %q", errUnknownKind, env.Kind)
		}

		if err == nil {
			stats.Handled++
			s.recorder.JobHandled(string(env.Kind), outcome)
			continue
		}

		outcome, err = s.fail(ctx, env, err)
		if err != nil {
			stats.Dropped++
			failures = append(failures, err)
			s.logs.Errorw("failed to park event",
				"id", env.ID,
				"kind", env.Kind,
				"attempts", env.Attempts,
				"payload", string(env.Payload),
				"error", err)
			continue
		}
		switch outcome {
		case outcomeRequeued:
			stats.Requeued++
		case outcomeEscalated:
			stats.Escalated++
		}
		s.recorder.JobHandled(string(env.Kind), outcome)
	}

	if stats.Pulled > 0 {
		s.logs.Infow("worker tick done",
			"pulled", stats.Pulled, "handled", stats.Handled,
			"requeued", stats.Requeued, "escalated", stats.Escalated,
			"dropped", stats.Dropped)
	}
	return stats, errors.Join(failures...)
}

func (s *Scheduler) handleReward(ctx context.Context, env queue.Envelope, settings reward.Settings) (string, error) {
	var fact reward.Fact
	if err := env.Decode(&fact); err != nil {
		return "", poison(err)
	}

	key := fact.Key()
	claimed, err := s.queue.Claim(ctx, key, s.claimTTL)
	if err != nil {
		return "", err
	}
	if !claimed {
		s.logs.Infow("skipping already claimed reward event", "key", key, "id", env.ID)
		return outcomeDuplicate, nil
	}

	entries, err := s.rewards.Settle(ctx, fact, settings)
	if err != nil {
		if releaseErr := s.queue.Release(ctx, key); releaseErr != nil {
			s.logs.Errorw("failed to release reward claim", "key", key, "error", releaseErr)
		}
		return "", err
	}
	if len(entries) == 0 {
		return outcomeNotGranted, nil
	}
	return outcomeOK, nil
}

func (s *Scheduler) handleBridge(ctx context.Context, env queue.Envelope) (string, error) {
	var ev bridge.Event
	if err := env.Decode(&ev); err != nil {
		return "", poison(err)
	}

	outcome, err := s.bridge.Process(ctx, ev)
	if err != nil {
		return "", err
	}
	return string(outcome), nil
}

// fail requeues env with one more attempt, or escalates it once the attempt
// budget is spent or retrying cannot help. A failed requeue falls back to
// escalation so the event stays on record.
func (s *Scheduler) fail(ctx context.Context, env queue.Envelope, cause error) (string, error) {
	if permanent(cause) || env.Attempts+1 >= s.config.MaxAttempts {
		if err := s.queue.Escalate(ctx, env, cause); err != nil {
			return "", fmt.Errorf("escalate event %s: %w", env.ID, err)
		}
		return outcomeEscalated, nil
	}

	requeued, err := s.queue.Requeue(ctx, env, cause)
	if err != nil {
		if escErr := s.queue.Escalate(ctx, env, cause); escErr != nil {
			return "", fmt.Errorf("requeue event %s: %w", env.ID, errors.Join(err, escErr))
		}
		s.logs.Warnw("event escalated after requeue failed", "id", env.ID, "kind", env.Kind, "error", err)
		return outcomeEscalated, nil
	}
	s.logs.Warnw("event requeued", "id", env.ID, "kind", env.Kind, "attempts", requeued.Attempts, "error", cause)
	return outcomeRequeued, nil
}

type poisonError struct {
	err error
}

func (e poisonError) Error() string {
	return e.err.Error()
}

func (e poisonError) Unwrap() error {
	return e.err
}

func poison(err error) error {
	return poisonError{err: err}
}

func permanent(err error) bool {
	var p poisonError
	return errors.As(err, &p) ||
		errors.Is(err, errUnknownKind) ||
		errors.Is(err, reward.ErrInvalidFact) ||
		errors.Is(err, bridge.ErrInvalidEvent)
}

type cronLogger struct {
	logs *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logs.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logs.Errorw(msg, append(keysAndValues, "error", err)...)
}
