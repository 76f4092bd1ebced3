package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/migration"
)

func newMigrateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "migrate <store.json>",
		Short: "Upgrade a project store to the current schema version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read store: %w", err)
			}

			var store migration.Store
			if err := json.Unmarshal(data, &store); err != nil {
				return fmt.Errorf("parse store %s: %w", args[0], err)
			}

			runner, err := migration.NewRunner(a.logger, migration.DefaultSteps()...)
			if err != nil {
				return err
			}

			a.logger.Info("migrating store",
				zap.String("from", store.Version()),
				zap.String("to", runner.Latest(store.Version())),
				zap.Int("chain", len(runner.Steps())))

			migrated, err := runner.Run(store)
			if err != nil {
				return err
			}

			a.logger.Info("store migrated",
				zap.String("version", migrated.Version()),
				zap.Int("history", len(migrated.History())))

			out, err := json.MarshalIndent(migrated, "", "  ")
			if err != nil {
				return err
			}

			out = append(out, '\n')

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			return os.WriteFile(output, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the migrated store here instead of stdout")

	return cmd
}
