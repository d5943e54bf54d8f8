package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"coinledger/internal/ethereum"
	"coinledger/internal/http/server"
	"coinledger/internal/queue"
	"coinledger/internal/reward"
	"coinledger/internal/worker"

	"github.com/spf13/cobra"
)

var errNodeURLMissing = errors.New("ETH_NODE_URL is not set")

func newWorkerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Drain the event queue on a fixed interval and serve metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return connected(cmd.Context(), opts, startWorker)
		},
	}
}

func startWorker(ctx context.Context, a *app) error {
	if a.config.NodeURL == "" {
		return errNodeURLMissing
	}

	client, err := ethereum.Dial(ctx, a.config.NodeURL)
	if err != nil {
		a.logs.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	redisClient, err := queue.Connect(ctx, a.config.RedisAddr, a.config.RedisPassword, a.config.RedisDB)
	if err != nil {
		a.logs.Errorw("redis connection failed", "error", err)
		return err
	}
	defer redisClient.Close()

	if _, err := a.treasury.EnsureAccount(ctx); err != nil {
		a.logs.Errorw("failed to open treasury account", "error", err)
		return err
	}

	confirmer := ethereum.NewReceiptConfirmer(a.logs, client, a.config.BridgeChain, a.config.ChainRPS)
	engine := reward.NewEngine(a.logs, a.ledger, reward.WithRecorder(a.metrics))

	scheduler := worker.NewScheduler(
		a.logs,
		queue.New(a.logs, redisClient, a.config.QueueName),
		engine,
		a.settings,
		a.bridgeProcessor(confirmer),
		worker.Config{
			Interval:    a.config.JobInterval,
			BatchSize:   a.config.JobBatchSize,
			MaxAttempts: a.config.JobMaxAttempts,
		},
		worker.WithRecorder(a.metrics),
	)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", a.metrics.Handler())
	srv := server.NewHTTP(a.logs, mux, a.config.MetricsPort)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	scheduler.Start(ctx)

	return run(srv, scheduler, cancel)
}

func run(srv *server.HTTPServer, scheduler *worker.Scheduler, cancel context.CancelFunc) error {
	// expect a signal to gracefully shutdown the worker
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := srv.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	cancel()
	<-scheduler.Stop().Done()

	sdErr := srv.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}
	return err
}
