package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/config"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/logging"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "etlfield",
		Short: "Validate and merge header views into ETL fields",
		Long: `etlfield reads the header views of a set of data files, checks them
for structural problems and merges the fields that share an alias into
ETL fields and units.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			if a.verbose {
				cfg.Log.Level = "debug"
			}

			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newValidateCmd(a),
		newMergeCmd(a),
		newUnitsCmd(a),
		newMigrateCmd(a),
	)

	return root
}
