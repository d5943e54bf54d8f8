package admin

import (
	"context"

	"coinledger/internal/db"
	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"
	"coinledger/internal/reward"
	"coinledger/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Validate(token string) (jwt.Claims, error)
}

//counterfeiter:generate -o fake -fake-name SettingsStore . SettingsStore
type SettingsStore interface {
	Current(ctx context.Context, sess *db.Session) (reward.Settings, error)
	Patch(ctx context.Context, by string, p reward.SettingsPatch) (reward.Settings, error)
	Revisions(ctx context.Context, limit int) ([]reward.SettingsRevision, error)
}

//counterfeiter:generate -o fake -fake-name DeadLetterStore . DeadLetterStore
type DeadLetterStore interface {
	Review(ctx context.Context, hash string, r deadletter.Review) (deadletter.Transaction, error)
	ListUnresolved(ctx context.Context, limit int) ([]deadletter.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name DeadLetterResolver . DeadLetterResolver
type DeadLetterResolver interface {
	ResolveDeadLetter(ctx context.Context, hash, resolver string, honor bool) (deadletter.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name LedgerReader . LedgerReader
type LedgerReader interface {
	Balance(ctx context.Context, sess *db.Session, id string) (int64, error)
	History(ctx context.Context, filter ledger.HistoryFilter) ([]ledger.Entry, int64, error)
	Audit(ctx context.Context) ([]ledger.Discrepancy, error)
}
