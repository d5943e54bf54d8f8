package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"coinledger/internal/admin"
	"coinledger/internal/bridge"
	"coinledger/internal/config"
	"coinledger/internal/db"
	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"
	"coinledger/internal/metrics"
	"coinledger/internal/reward"
	"coinledger/internal/treasury"
	"coinledger/pkg/jwt"
	"coinledger/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errJWTSecretMissing = errors.New("JWT_SECRET is not set")

// app holds what every subcommand shares. Stores are only built by connect.
type app struct {
	logs    *zap.SugaredLogger
	config  config.App
	metrics *metrics.Collector

	database    *db.Database
	coordinator *db.Coordinator
	ledger      *ledger.Store
	treasury    *treasury.Controller
	settings    *reward.SettingsStore
	deadLetters *deadletter.Store
}

func newApp(opts *rootOptions) (*app, error) {
	level, err := zapcore.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger := log.NewZapLogger("coinledger", level)

	cfg, err := config.NewApp(opts.envFile)
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return nil, err
	}

	return &app{
		logs:    logger,
		config:  cfg,
		metrics: metrics.NewCollector(),
	}, nil
}

func (a *app) connect() error {
	database, err := db.NewPostgresDB(a.config.DBConnectionURL)
	if err != nil {
		a.logs.Errorw("failed to connect to database", "error", err)
		return err
	}

	a.database = database
	a.coordinator = db.NewCoordinator(a.logs, database,
		db.WithMaxAttempts(a.config.TxMaxAttempts),
		db.WithRetryHook(a.metrics.TransactionRetried),
	)
	a.ledger = ledger.NewStore(a.logs, a.coordinator, ledger.WithRecorder(a.metrics))
	a.treasury = treasury.NewController(a.logs, a.ledger, a.config.TreasuryAccountID, a.config.EscrowLimits())
	a.settings = reward.NewSettingsStore(a.logs, a.coordinator)
	a.deadLetters = deadletter.NewStore(a.logs, a.coordinator, deadletter.WithRecorder(a.metrics))
	return nil
}

func (a *app) close() {
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			a.logs.Warnw("failed to close database", "error", err)
		}
	}
	_ = a.logs.Sync()
}

func (a *app) bridgeProcessor(chain bridge.ChainClient) *bridge.Processor {
	return bridge.NewProcessor(a.logs, a.ledger, a.treasury, a.deadLetters, chain,
		bridge.WithMaxAttempts(a.config.BridgeMaxAttempts),
	)
}

func (a *app) jwtService() (*jwt.JWTService, error) {
	if a.config.JWTSecret == "" {
		return nil, errJWTSecretMissing
	}
	return jwt.NewJWTService([]byte(a.config.JWTSecret)), nil
}

// adminService wires the administrative surface. Resolving a dead letter
// never calls the chain, so the processor gets no chain client.
func (a *app) adminService() (*admin.Service, error) {
	tokens, err := a.jwtService()
	if err != nil {
		return nil, err
	}
	return admin.NewService(a.logs, tokens, a.settings, a.deadLetters, a.bridgeProcessor(nil), a.ledger), nil
}

// connected loads the configuration, opens the database and hands the app to run.
func connected(ctx context.Context, opts *rootOptions, run func(context.Context, *app) error) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.connect(); err != nil {
		return err
	}
	return run(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// readInput opens path, or stdin when path is "-".
func readInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func decodeFile(path string, object any) error {
	r, err := readInput(path)
	if err != nil {
		return err
	}
	defer r.Close()
	return admin.DecodeAndValidate(r, object)
}
