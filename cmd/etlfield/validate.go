package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/headerview"
)

var errInvalid = errors.New("header views are invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <views.yaml>",
		Short: "Check header views and print the errors per file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hvs, err := a.load(args[0])
			if err != nil {
				return err
			}

			diags := headerview.ValidateDiagnostics(hvs)
			for _, w := range diags.Warnings {
				a.logger.Warn(w.Message, zap.String("file", w.File), zap.String("field", w.Field))
			}

			report := diags.ByFile()
			if len(report) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			if err := writeYAML(cmd, report); err != nil {
				return err
			}

			return errInvalid
		},
	}
}

// load reads a header view document and checks its schema.
func (a *app) load(path string) (etl.HeaderViews, error) {
	hvs, err := etl.LoadHeaderViews(path)
	if err != nil {
		return nil, err
	}

	if err := etl.ValidateSchema(hvs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	a.logger.Debug("loaded header views",
		zap.String("path", path),
		zap.Int("files", len(hvs)))

	return hvs, nil
}

func writeYAML(cmd *cobra.Command, v any) error {
	data, err := etl.Marshal(v)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
