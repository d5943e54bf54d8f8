package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Kind string

const (
	KindReward Kind = "reward"
	KindBridge Kind = "bridge"
)

// Envelope wraps one observed external event on the queue.
type Envelope struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Attempts   int             `json:"attempts"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
	LastError  string          `json:"lastError,omitempty"`
}

func NewEnvelope(kind Kind, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	return Envelope{
		ID:      uuid.NewString(),
		Kind:    kind,
		Payload: raw,
	}, nil
}

func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload %s: %w", e.Kind, e.ID, err)
	}
	return nil
}

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Queue is a FIFO of envelopes on a redis list. Events that keep failing are
// moved to the "<name>:failed" list for inspection.
type Queue struct {
	logs   *zap.SugaredLogger
	client *redis.Client
	name   string
	now    func() time.Time
}

func New(logger *zap.SugaredLogger, client *redis.Client, name string) *Queue {
	return &Queue{
		logs:   logger,
		client: client,
		name:   name,
		now:    time.Now,
	}
}

func (q *Queue) failedKey() string {
	return q.name + ":failed"
}

func (q *Queue) claimKey(key string) string {
	return q.name + ":claim:" + key
}

func (q *Queue) Publish(ctx context.Context, env Envelope) error {
	if env.ID == "" {
		env.ID = uuid.NewString()
	}
	if env.EnqueuedAt.IsZero() {
		env.EnqueuedAt = q.now().UTC()
	}
	return q.push(ctx, q.name, env)
}

// Pull pops up to n envelopes without blocking, oldest first. Entries that are
// not valid envelopes are moved to the failed list.
func (q *Queue) Pull(ctx context.Context, n int) ([]Envelope, error) {
	envs := make([]Envelope, 0, n)
	for len(envs) < n {
		raw, err := q.client.RPop(ctx, q.name).Bytes()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return envs, fmt.Errorf("pop %s: %w", q.name, err)
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			q.logs.Errorw("dropping malformed envelope to failed list", "queue", q.name, "error", err)
			if pushErr := q.client.RPush(ctx, q.failedKey(), raw).Err(); pushErr != nil {
				return envs, fmt.Errorf("push malformed envelope: %w", pushErr)
			}
			continue
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// Requeue puts env back at the tail with one more attempt recorded.
func (q *Queue) Requeue(ctx context.Context, env Envelope, cause error) (Envelope, error) {
	env.Attempts++
	env.LastError = cause.Error()
	if err := q.push(ctx, q.name, env); err != nil {
		return env, err
	}
	return env, nil
}

// Escalate moves env to the failed list.
func (q *Queue) Escalate(ctx context.Context, env Envelope, cause error) error {
	env.LastError = cause.Error()
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", env.ID, err)
	}
	if err := q.client.RPush(ctx, q.failedKey(), raw).Err(); err != nil {
		return fmt.Errorf("escalate envelope %s: %w", env.ID, err)
	}
	q.logs.Warnw("envelope escalated", "queue", q.name, "id", env.ID, "kind", env.Kind, "attempts", env.Attempts, "error", cause)
	return nil
}

// Failed lists up to n escalated envelopes, oldest first.
func (q *Queue) Failed(ctx context.Context, n int64) ([]Envelope, error) {
	raws, err := q.client.LRange(ctx, q.failedKey(), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list failed envelopes: %w", err)
	}

	envs := make([]Envelope, 0, len(raws))
	for _, raw := range raws {
		var env Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			continue
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.name).Result()
	if err != nil {
		return 0, fmt.Errorf("length of %s: %w", q.name, err)
	}
	return n, nil
}

// Claim marks key as being processed. It returns false when someone else holds the claim.
func (q *Queue) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := q.client.SetNX(ctx, q.claimKey(key), q.now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}
	return ok, nil
}

func (q *Queue) Release(ctx context.Context, key string) error {
	if err := q.client.Del(ctx, q.claimKey(key)).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

func (q *Queue) push(ctx context.Context, key string, env Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", env.ID, err)
	}
	if err := q.client.LPush(ctx, key, raw).Err(); err != nil {
		return fmt.Errorf("push envelope %s: %w", env.ID, err)
	}
	return nil
}
