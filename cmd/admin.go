package cmd

import (
	"context"
	"os"
	"time"

	"coinledger/internal/admin"
	"coinledger/internal/ledger"
	"coinledger/internal/reward"

	"github.com/spf13/cobra"
)

const tokenEnvKey = "COINLEDGER_TOKEN"

type adminOptions struct {
	token string
	limit int
}

func (o *adminOptions) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.token, "token", os.Getenv(tokenEnvKey), "bearer token issued by the token command")
	cmd.PersistentFlags().IntVar(&o.limit, "limit", 0, "maximum number of rows")
}

func withAdmin(ctx context.Context, opts *rootOptions, fn func(context.Context, *admin.Service) error) error {
	return connected(ctx, opts, func(ctx context.Context, a *app) error {
		service, err := a.adminService()
		if err != nil {
			return err
		}
		return fn(ctx, service)
	})
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	aOpts := &adminOptions{}
	var file string

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and patch the reward settings",
	}
	aOpts.bind(settingsCmd)

	show := &cobra.Command{
		Use:  "show",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				settings, err := s.Settings(ctx, aOpts.token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), settings)
			})
		},
	}

	patch := &cobra.Command{
		Use:   "patch",
		Short: "Apply a JSON settings patch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p reward.SettingsPatch
			if err := decodeFile(file, &p); err != nil {
				return err
			}
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				settings, err := s.PatchSettings(ctx, aOpts.token, p)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), settings)
			})
		},
	}
	patch.Flags().StringVarP(&file, "file", "f", "-", "JSON patch file, - for stdin")

	history := &cobra.Command{
		Use:   "history",
		Short: "List settings revisions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				revisions, err := s.SettingsRevisions(ctx, aOpts.token, aOpts.limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), revisions)
			})
		},
	}

	settingsCmd.AddCommand(show, patch, history)
	return settingsCmd
}

func newDeadLettersCmd(opts *rootOptions) *cobra.Command {
	aOpts := &adminOptions{}
	var (
		notes string
		honor bool
	)

	deadLettersCmd := &cobra.Command{
		Use:   "deadletters",
		Short: "Review and resolve bridge transactions parked for manual review",
	}
	aOpts.bind(deadLettersCmd)

	list := &cobra.Command{
		Use:   "list",
		Short: "List unresolved dead letters, oldest failure first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				records, err := s.UnresolvedDeadLetters(ctx, aOpts.token, aOpts.limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), records)
			})
		},
	}

	review := &cobra.Command{
		Use:   "review <transaction-hash>",
		Short: "Record review notes on a dead letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				record, err := s.ReviewDeadLetter(ctx, aOpts.token, admin.ReviewRequest{
					TransactionHash: args[0],
					Notes:           notes,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), record)
			})
		},
	}
	review.Flags().StringVar(&notes, "notes", "", "review notes")

	resolve := &cobra.Command{
		Use:   "resolve <transaction-hash>",
		Short: "Close a dead letter, settling it first when --honor is set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				record, err := s.ResolveDeadLetter(ctx, aOpts.token, admin.ResolveRequest{
					TransactionHash: args[0],
					Honor:           honor,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), record)
			})
		},
	}
	resolve.Flags().BoolVar(&honor, "honor", false, "settle the transaction through the treasury before resolving")

	deadLettersCmd.AddCommand(list, review, resolve)
	return deadLettersCmd
}

func newLedgerCmd(opts *rootOptions) *cobra.Command {
	aOpts := &adminOptions{}
	var (
		types  []string
		from   string
		to     string
		offset int
	)

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Read balances and entries",
	}
	aOpts.bind(ledgerCmd)

	balance := &cobra.Command{
		Use:  "balance <account-id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				amount, err := s.Balance(ctx, aOpts.token, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"accountId": args[0], "balance": amount})
			})
		},
	}

	history := &cobra.Command{
		Use:   "history [account-id]",
		Short: "List entries, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := admin.HistoryRequest{Limit: aOpts.limit, Offset: offset}
			if len(args) == 1 {
				req.AccountID = args[0]
			}
			for _, t := range types {
				req.Types = append(req.Types, ledger.EntryType(t))
			}
			var err error
			if req.From, err = parseTime(from); err != nil {
				return err
			}
			if req.To, err = parseTime(to); err != nil {
				return err
			}

			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				entries, total, err := s.History(ctx, aOpts.token, req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"total": total, "entries": entries})
			})
		},
	}
	history.Flags().StringSliceVar(&types, "type", nil, "entry types to include")
	history.Flags().StringVar(&from, "from", "", "RFC3339 lower bound")
	history.Flags().StringVar(&to, "to", "", "RFC3339 upper bound")
	history.Flags().IntVar(&offset, "offset", 0, "rows to skip")

	audit := &cobra.Command{
		Use:   "audit",
		Short: "Compare every balance with the sum of its entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), opts, func(ctx context.Context, s *admin.Service) error {
				discrepancies, err := s.Audit(ctx, aOpts.token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), discrepancies)
			})
		},
	}

	ledgerCmd.AddCommand(balance, history, audit)
	return ledgerCmd
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
