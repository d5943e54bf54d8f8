package cmd

import (
	"context"

	"coinledger/internal/deadletter"
	"coinledger/internal/ledger"
	"coinledger/internal/reward"

	"github.com/spf13/cobra"
)

const seededBy = "migrate"

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, open the treasury account and seed the reward settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return connected(cmd.Context(), opts, migrate)
		},
	}
}

func migrate(ctx context.Context, a *app) error {
	err := a.database.MigrateModels(
		&ledger.Account{},
		&ledger.Entry{},
		&reward.Settings{},
		&reward.SettingsRevision{},
		&deadletter.Transaction{},
	)
	if err != nil {
		a.logs.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	if _, err := a.treasury.EnsureAccount(ctx); err != nil {
		a.logs.Errorw("failed to open treasury account", "error", err)
		return err
	}

	initial := reward.Settings{}
	if a.config.RewardSettingsSeed != "" {
		initial, err = reward.LoadSeedFile(a.config.RewardSettingsSeed)
		if err != nil {
			a.logs.Errorw("failed to load reward settings seed", "error", err, "path", a.config.RewardSettingsSeed)
			return err
		}
	}

	settings, err := a.settings.Seed(ctx, initial, seededBy)
	if err != nil {
		a.logs.Errorw("failed to seed reward settings", "error", err)
		return err
	}

	a.logs.Infow("migration finished",
		"treasury_account", a.treasury.AccountID(),
		"settings_version", settings.Version)
	return nil
}
