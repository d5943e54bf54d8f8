package admin

import (
	"context"
	"errors"
	"fmt"

	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"
	"coinledger/internal/reward"
	"coinledger/pkg/jwt"

	"go.uber.org/zap"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)

const defaultListLimit = 100

// Service is the entry point for administrative decisions. Every call carries a bearer token whose subject
// becomes the recorded actor. Mutations need the admin role; reviewers may read and annotate dead letters.
type Service struct {
	logs        *zap.SugaredLogger
	verifier    TokenVerifier
	settings    SettingsStore
	deadLetters DeadLetterStore
	resolver    DeadLetterResolver
	ledger      LedgerReader
}

func NewService(
	logger *zap.SugaredLogger,
	verifier TokenVerifier,
	settings SettingsStore,
	deadLetters DeadLetterStore,
	resolver DeadLetterResolver,
	ledger LedgerReader,
) *Service {
	return &Service{
		logs:        logger,
		verifier:    verifier,
		settings:    settings,
		deadLetters: deadLetters,
		resolver:    resolver,
		ledger:      ledger,
	}
}

func (s *Service) PatchSettings(ctx context.Context, token string, patch reward.SettingsPatch) (reward.Settings, error) {
	claims, err := s.authorize(token, jwt.RoleAdmin)
	if err != nil {
		return reward.Settings{}, err
	}

	if err := patch.Validate(); err != nil {
		return reward.Settings{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	settings, err := s.settings.Patch(ctx, claims.Subject, patch)
	if err != nil {
		s.logs.Errorw("failed to patch reward settings",
			"error", err,
			"changed_by", claims.Subject)
		return reward.Settings{}, fmt.Errorf("patch settings: %w", err)
	}

	s.logs.Infow("reward settings patched",
		"changed_by", claims.Subject,
		"version", settings.Version)
	return settings, nil
}

func (s *Service) Settings(ctx context.Context, token string) (reward.Settings, error) {
	if _, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer); err != nil {
		return reward.Settings{}, err
	}

	settings, err := s.settings.Current(ctx, nil)
	if err != nil {
		return reward.Settings{}, fmt.Errorf("current settings: %w", err)
	}
	return settings, nil
}

func (s *Service) SettingsRevisions(ctx context.Context, token string, limit int) ([]reward.SettingsRevision, error) {
	if _, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer); err != nil {
		return nil, err
	}

	revisions, err := s.settings.Revisions(ctx, pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("settings revisions: %w", err)
	}
	return revisions, nil
}

func (s *Service) ReviewDeadLetter(ctx context.Context, token string, req ReviewRequest) (deadletter.Transaction, error) {
	claims, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer)
	if err != nil {
		return deadletter.Transaction{}, err
	}

	if err := req.Validate(); err != nil {
		return deadletter.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	record, err := s.deadLetters.Review(ctx, req.TransactionHash, deadletter.Review{
		By:    claims.Subject,
		Notes: req.Notes,
	})
	if err != nil {
		s.logs.Errorw("failed to review dead letter",
			"error", err,
			"transaction_hash", req.TransactionHash,
			"reviewed_by", claims.Subject)
		return deadletter.Transaction{}, fmt.Errorf("review dead letter: %w", err)
	}

	s.logs.Infow("dead letter reviewed",
		"transaction_hash", req.TransactionHash,
		"reviewed_by", claims.Subject)
	return record, nil
}

func (s *Service) ResolveDeadLetter(ctx context.Context, token string, req ResolveRequest) (deadletter.Transaction, error) {
	claims, err := s.authorize(token, jwt.RoleAdmin)
	if err != nil {
		return deadletter.Transaction{}, err
	}

	if err := req.Validate(); err != nil {
		return deadletter.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	record, err := s.resolver.ResolveDeadLetter(ctx, req.TransactionHash, claims.Subject, req.Honor)
	if err != nil {
		s.logs.Errorw("failed to resolve dead letter",
			"error", err,
			"transaction_hash", req.TransactionHash,
			"resolved_by", claims.Subject,
			"honor", req.Honor)
		return deadletter.Transaction{}, fmt.Errorf("resolve dead letter: %w", err)
	}

	s.logs.Infow("dead letter resolved",
		"transaction_hash", req.TransactionHash,
		"resolved_by", claims.Subject,
		"honor", req.Honor)
	return record, nil
}

func (s *Service) UnresolvedDeadLetters(ctx context.Context, token string, limit int) ([]deadletter.Transaction, error) {
	if _, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer); err != nil {
		return nil, err
	}

	records, err := s.deadLetters.ListUnresolved(ctx, pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("list unresolved dead letters: %w", err)
	}
	return records, nil
}

func (s *Service) Balance(ctx context.Context, token, accountID string) (int64, error) {
	if _, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer); err != nil {
		return 0, err
	}
	if accountID == "" {
		return 0, fmt.Errorf("%w: account id is required", ErrInvalidRequest)
	}

	balance, err := s.ledger.Balance(ctx, nil, accountID)
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", accountID, err)
	}
	return balance, nil
}

func (s *Service) History(ctx context.Context, token string, req HistoryRequest) ([]ledger.Entry, int64, error) {
	if _, err := s.authorize(token, jwt.RoleAdmin, jwt.RoleReviewer); err != nil {
		return nil, 0, err
	}

	if err := req.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	filter := req.filter()
	filter.Limit = pageSize(filter.Limit)

	entries, total, err := s.ledger.History(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("ledger history: %w", err)
	}
	return entries, total, nil
}

// Audit lists every account whose stored balance disagrees with its entries.
func (s *Service) Audit(ctx context.Context, token string) ([]ledger.Discrepancy, error) {
	claims, err := s.authorize(token, jwt.RoleAdmin)
	if err != nil {
		return nil, err
	}

	discrepancies, err := s.ledger.Audit(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit ledger: %w", err)
	}

	if len(discrepancies) > 0 {
		s.logs.Warnw("ledger audit found discrepancies",
			"requested_by", claims.Subject,
			"count", len(discrepancies))
	}
	return discrepancies, nil
}

func (s *Service) authorize(token string, roles ...string) (jwt.Claims, error) {
	claims, err := s.verifier.Validate(token)
	if err != nil {
		return jwt.Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	for _, role := range roles {
		if claims.Role == role {
			return claims, nil
		}
	}

	s.logs.Warnw("admin call rejected",
		"subject", claims.Subject,
		"role", claims.Role)
	return jwt.Claims{}, fmt.Errorf("%w: role %q", ErrForbidden, claims.Role)
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxPageSize)
}
