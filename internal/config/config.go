package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"coinledger/internal/treasury"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type App struct {
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	QueueName     string `env:"QUEUE_NAME" envDefault:"coinledger:events"`

	NodeURL     string  `env:"ETH_NODE_URL"`
	BridgeChain string  `env:"BRIDGE_CHAIN" envDefault:"ethereum"`
	ChainRPS    float64 `env:"CHAIN_RPS" envDefault:"5"`

	JWTSecret   string `env:"JWT_SECRET"`
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	TreasuryAccountID string `env:"TREASURY_ACCOUNT_ID" envDefault:"treasury"`
	MaxMintLimit      int64  `env:"MAX_MINT_LIMIT,required"`
	MaxBurnLimit      int64  `env:"MAX_BURN_LIMIT,required"`

	TxMaxAttempts     uint `env:"TX_MAX_ATTEMPTS" envDefault:"5"`
	BridgeMaxAttempts uint `env:"BRIDGE_MAX_ATTEMPTS" envDefault:"5"`

	JobInterval    time.Duration `env:"JOB_INTERVAL" envDefault:"10s"`
	JobBatchSize   int           `env:"JOB_BATCH_SIZE" envDefault:"50"`
	JobMaxAttempts int           `env:"JOB_MAX_ATTEMPTS" envDefault:"5"`

	RewardSettingsSeed string `env:"REWARD_SETTINGS_SEED"`
}

// NewApp reads the environment, after loading the given dotenv files if they exist.
func NewApp(dotenv ...string) (App, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[App]()
	if err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.EscrowLimits().Validate(); err != nil {
		return App{}, fmt.Errorf("escrow limits: %w", err)
	}

	return cfg, nil
}

func (a App) EscrowLimits() treasury.EscrowLimits {
	return treasury.EscrowLimits{
		MaxMint: a.MaxMintLimit,
		MaxBurn: a.MaxBurnLimit,
	}
}
