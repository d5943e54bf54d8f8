package reward

import (
	"context"
	"fmt"
	"time"

	"coinledger/internal/db"
	"coinledger/internal/ledger"

	"go.uber.org/zap"
)

type Reason string

const (
	ReasonNone         Reason = ""
	ReasonBeforeStart  Reason = "before_start"
	ReasonDailyLimit   Reason = "daily_limit"
	ReasonReplyLimit   Reason = "reply_limit"
	ReasonMaxThreads   Reason = "max_threads"
	ReasonMaxMainPosts Reason = "max_main_posts"
	ReasonUnknownTag   Reason = "unknown_tag"
	ReasonZeroAmount   Reason = "zero_amount"
)

// Award is one reward the fact qualified for. Tag is empty for fixed actions.
type Award struct {
	Amount  int64
	TagKind TagKind
	Tag     string
}

type Evaluation struct {
	Reason Reason
	Awards []Award
}

func (e Evaluation) Eligible() bool {
	return e.Reason == ReasonNone && len(e.Awards) > 0
}

func (e Evaluation) outcome() string {
	if e.Eligible() {
		return "settled"
	}
	return string(e.Reason)
}

// Engine turns activity facts into reward entries. Every cap is derived from
// the ledger itself; there are no separate counters. The engine does not
// deduplicate facts, callers that may redeliver must claim them first.
type Engine struct {
	logs     *zap.SugaredLogger
	store    *ledger.Store
	recorder Recorder
}

type EngineOption func(*Engine)

func WithRecorder(r Recorder) EngineOption {
	return func(e *Engine) {
		e.recorder = r
	}
}

func NewEngine(logger *zap.SugaredLogger, store *ledger.Store, opts ...EngineOption) *Engine {
	e := &Engine{
		logs:     logger,
		store:    store,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate decides whether fact earns rewards under settings and how much.
// Counts are read through sess so they agree with what Settle then writes.
func (e *Engine) Evaluate(ctx context.Context, sess *db.Session, fact Fact, settings Settings) (Evaluation, error) {
	if err := fact.Validate(); err != nil {
		return Evaluation{}, fmt.Errorf("%w: %w", ErrInvalidFact, err)
	}

	start := settings.RewardStartDate
	if start != nil && fact.OccurredAt.Before(*start) && !settings.whitelisted(fact.ContentID) {
		return Evaluation{Reason: ReasonBeforeStart}, nil
	}

	awards, reason := awardsFor(fact, settings)
	if reason != ReasonNone {
		return Evaluation{Reason: reason}, nil
	}

	dayStart := startOfDay(e.store.Now())
	dayEnd := dayStart.Add(24 * time.Hour)

	caps := []struct {
		limit   int64
		reason  Reason
		query   ledger.ReferenceQuery
		applies bool
	}{
		{
			limit:   settings.DailyLimit,
			reason:  ReasonDailyLimit,
			query:   ledger.ReferenceQuery{From: dayStart, To: dayEnd},
			applies: true,
		},
		{
			limit:   settings.ReplyLimit,
			reason:  ReasonReplyLimit,
			query:   ledger.ReferenceQuery{Subtype: string(ActionReply), ParentRef: fact.ThreadID},
			applies: fact.Action == ActionReply,
		},
		// thread and main-post caps gate their own actions rather than replies;
		// main posts are counted per UTC day.
		{
			limit:   settings.MaxThreads,
			reason:  ReasonMaxThreads,
			query:   ledger.ReferenceQuery{Subtype: string(ActionThread), ParentRef: fact.ThreadID},
			applies: fact.Action == ActionThread,
		},
		{
			limit:   settings.MaxMainPosts,
			reason:  ReasonMaxMainPosts,
			query:   ledger.ReferenceQuery{Subtype: string(ActionPost), From: dayStart, To: dayEnd},
			applies: fact.Action == ActionPost,
		},
	}

	for _, c := range caps {
		if !c.applies || c.limit == 0 {
			continue
		}
		c.query.Type = ledger.EntryReward
		c.query.CreditAccountID = fact.ActorAccountID
		n, err := e.store.CountDistinctReferences(ctx, sess, c.query)
		if err != nil {
			return Evaluation{}, fmt.Errorf("derive %s: %w", c.reason, err)
		}
		if n >= c.limit {
			return Evaluation{Reason: c.reason}, nil
		}
	}

	return Evaluation{Awards: awards}, nil
}

// Settle evaluates fact and writes one reward entry per award in a single unit
// of work. An empty result means nothing qualified.
func (e *Engine) Settle(ctx context.Context, fact Fact, settings Settings) ([]ledger.Entry, error) {
	var eval Evaluation
	entries, err := db.RunInTransaction(ctx, e.store.Coordinator(), nil, func(tx *db.Session) ([]ledger.Entry, error) {
		// serializes settlements for the actor so the caps hold under concurrency
		if err := e.store.LockAccount(ctx, tx, fact.ActorAccountID); err != nil {
			return nil, err
		}

		var err error
		eval, err = e.Evaluate(ctx, tx, fact, settings)
		if err != nil {
			return nil, err
		}
		if !eval.Eligible() {
			return []ledger.Entry{}, nil
		}

		out := make([]ledger.Entry, 0, len(eval.Awards))
		for _, award := range eval.Awards {
			entry, err := e.store.ApplyEntry(ctx, tx, ledger.EntryRequest{
				CreditAccountID: fact.ActorAccountID,
				Amount:          award.Amount,
				Type:            ledger.EntryReward,
				Meta: ledger.Meta{Reward: &ledger.RewardMeta{
					Action:    string(fact.Action),
					TagKind:   string(award.TagKind),
					Tag:       award.Tag,
					ContentID: fact.ContentID,
					ThreadID:  fact.ThreadID,
				}},
			})
			if err != nil {
				return nil, err
			}
			out = append(out, entry)
		}
		return out, nil
	})
	if err != nil {
		e.recorder.RewardEvaluated("failed")
		e.logs.Errorw("failed to settle reward",
			"account_id", fact.ActorAccountID, "action", fact.Action, "content_id", fact.ContentID, "error", err)
		return nil, fmt.Errorf("settle reward: %w", err)
	}

	e.recorder.RewardEvaluated(eval.outcome())
	if len(entries) == 0 {
		e.logs.Infow("reward not granted",
			"account_id", fact.ActorAccountID, "action", fact.Action, "reason", eval.Reason)
		return entries, nil
	}

	e.logs.Infow("reward settled",
		"account_id", fact.ActorAccountID, "action", fact.Action, "entries", len(entries))
	return entries, nil
}

func awardsFor(fact Fact, settings Settings) ([]Award, Reason) {
	if fact.Action.fixed() {
		amount := settings.fixedAmount(fact.Action)
		if amount == 0 {
			return nil, ReasonZeroAmount
		}
		return []Award{{Amount: amount}}, ReasonNone
	}

	kinds := []TagKind{TagMention, TagHashtag, TagCashtag}
	if kind, ok := tagActions[fact.Action]; ok {
		kinds = []TagKind{kind}
	}

	var awards []Award
	matched := false
	for _, kind := range kinds {
		tags := make(map[string]struct{})
		for _, t := range fact.Tags {
			if t.Kind == kind {
				tags[normalizeTag(t.Value)] = struct{}{}
			}
		}
		if len(tags) == 0 {
			continue
		}

		for _, row := range settings.table(kind) {
			key := normalizeTag(row.Tag)
			if _, ok := tags[key]; !ok {
				continue
			}
			matched = true
			if row.Reward > 0 {
				awards = append(awards, Award{Amount: row.Reward, TagKind: kind, Tag: key})
			}
		}
	}

	switch {
	case !matched:
		return nil, ReasonUnknownTag
	case len(awards) == 0:
		return nil, ReasonZeroAmount
	}
	return awards, ReasonNone
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
