package cmd

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile  string
	logLevel string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "coinledger",
		Short:         "Ledger and settlement engine for the platform's virtual currency",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMigrateCmd(opts),
		newWorkerCmd(opts),
		newQueueCmd(opts),
		newTokenCmd(opts),
		newSettingsCmd(opts),
		newDeadLettersCmd(opts),
		newLedgerCmd(opts),
	)
	return root
}
