package cmd

import (
	"fmt"
	"time"

	"coinledger/pkg/jwt"

	"github.com/spf13/cobra"
)

type tokenOptions struct {
	subject string
	role    string
	ttl     time.Duration
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	tOpts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed token for the administrative commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			if tOpts.role != jwt.RoleAdmin && tOpts.role != jwt.RoleReviewer {
				return fmt.Errorf("unknown role %q", tOpts.role)
			}

			tokens, err := a.jwtService()
			if err != nil {
				return err
			}

			signed, err := tokens.Issue(jwt.TokenInfo{
				Subject:    tOpts.subject,
				Role:       tOpts.role,
				Expiration: tOpts.ttl,
			})
			if err != nil {
				return err
			}

			a.logs.Infow("token issued", "subject", tOpts.subject, "role", tOpts.role, "ttl", tOpts.ttl)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return err
		},
	}
	cmd.Flags().StringVar(&tOpts.subject, "subject", "", "identity recorded for every decision made with the token")
	cmd.Flags().StringVar(&tOpts.role, "role", jwt.RoleAdmin, "admin or reviewer")
	cmd.Flags().DurationVar(&tOpts.ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
