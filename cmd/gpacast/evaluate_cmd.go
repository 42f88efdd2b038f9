package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/report"
)

func evaluateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Print in-sample error metrics of the trained tree",
		Long:  `Train the regression tree on the built-in dataset and print MSE, RMSE, MAE and R2 over the same rows`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := rootConfig.trainedModel()
			if err != nil {
				return err
			}
			d := p.Diagnostics()
			if d == nil {
				return errors.New("in-sample metrics are undefined for this training set")
			}
			if rootConfig.settings.Output.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			return report.Metrics(cmd.OutOrStdout(), *d)
		},
	}
}
