package cmd

import (
	"context"
	"fmt"

	"coinledger/internal/bridge"
	"coinledger/internal/queue"
	"coinledger/internal/reward"

	"github.com/spf13/cobra"
)

type queueOptions struct {
	file  string
	limit int64
}

func newQueueCmd(opts *rootOptions) *cobra.Command {
	qOpts := &queueOptions{}

	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Publish events to and inspect the event queue",
	}

	publish := &cobra.Command{
		Use:       "publish <reward|bridge>",
		Short:     "Validate an event from a JSON file and publish it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(queue.KindReward), string(queue.KindBridge)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withQueue(cmd.Context(), opts, func(ctx context.Context, a *app, q *queue.Queue) error {
				env, err := envelopeFromFile(queue.Kind(args[0]), qOpts.file)
				if err != nil {
					return err
				}
				if err := q.Publish(ctx, env); err != nil {
					return err
				}
				a.logs.Infow("event published", "id", env.ID, "kind", env.Kind)
				return printJSON(cmd.OutOrStdout(), env)
			})
		},
	}
	publish.Flags().StringVarP(&qOpts.file, "file", "f", "-", "JSON event file, - for stdin")

	failed := &cobra.Command{
		Use:   "failed",
		Short: "List escalated events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd.Context(), opts, func(ctx context.Context, _ *app, q *queue.Queue) error {
				envelopes, err := q.Failed(ctx, qOpts.limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), envelopes)
			})
		},
	}
	failed.Flags().Int64Var(&qOpts.limit, "limit", 50, "maximum number of events")

	length := &cobra.Command{
		Use:   "len",
		Short: "Print the number of pending events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withQueue(cmd.Context(), opts, func(ctx context.Context, _ *app, q *queue.Queue) error {
				n, err := q.Len(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
				return err
			})
		},
	}

	queueCmd.AddCommand(publish, failed, length)
	return queueCmd
}

func withQueue(ctx context.Context, opts *rootOptions, fn func(context.Context, *app, *queue.Queue) error) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close()

	client, err := queue.Connect(ctx, a.config.RedisAddr, a.config.RedisPassword, a.config.RedisDB)
	if err != nil {
		a.logs.Errorw("redis connection failed", "error", err)
		return err
	}
	defer client.Close()

	return fn(ctx, a, queue.New(a.logs, client, a.config.QueueName))
}

func envelopeFromFile(kind queue.Kind, path string) (queue.Envelope, error) {
	switch kind {
	case queue.KindReward:
		var fact reward.Fact
		if err := decodeFile(path, &fact); err != nil {
			return queue.Envelope{}, err
		}
		return queue.NewEnvelope(kind, fact)
	case queue.KindBridge:
		var ev bridge.Event
		if err := decodeFile(path, &ev); err != nil {
			return queue.Envelope{}, err
		}
		return queue.NewEnvelope(kind, ev)
	default:
		return queue.Envelope{}, fmt.Errorf("unknown event kind %q", kind)
	}
}
