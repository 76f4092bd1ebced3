package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/merge"
)

func newMergeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "merge <views.yaml>",
		Short: "Merge the fields of every header view into ETL fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := a.mergeFields(cmd, args[0], format)
			if err != nil {
				return err
			}

			out := make(map[string]etl.EtlField, len(fields))
			for _, f := range fields {
				out[f.Name] = f
			}

			return writeYAML(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format of reference dates (e.g. YYYY-MM)")

	return cmd
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units <views.yaml>",
		Short: "Print the ETL units derived from the merged fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := a.mergeFields(cmd, args[0], "")
			if err != nil {
				return err
			}

			return writeYAML(cmd, merge.Units(fields))
		},
	}
}

func (a *app) mergeFields(cmd *cobra.Command, path, format string) ([]etl.EtlField, error) {
	hvs, err := a.load(path)
	if err != nil {
		return nil, err
	}

	cfg := a.cfg.Merge
	if format != "" {
		cfg.TimeFormat = format
	}

	fields, err := merge.New(cfg, a.logger).Fields(cmd.Context(), hvs)

	var verr *merge.ValidationError
	if errors.As(err, &verr) {
		if werr := writeYAML(cmd, verr.Diagnostics.ByFile()); werr != nil {
			return nil, werr
		}

		return nil, errInvalid
	}

	return fields, err
}
