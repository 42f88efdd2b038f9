package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/pkg/log"
	"github.com/YuminosukeSato/gpacast/report"
)

type predictCmdConfig struct {
	input  string
	format string
	chart  string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the GPA of a student record",
		Long: `Read a student record from a JSON or YAML file (or JSON on stdin with
-i -) and print the predicted GPA, confidence, risk level, recommendation,
key factors and improvement areas`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			record, err := readRecord(config.input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			p := rootConfig.newPredictor()
			res, err := p.Predict(record)
			if err != nil {
				return err
			}

			out := rootConfig.settings.Output
			if out.Chart != "" {
				if err := report.FactorChart(res.KeyFactors, out.Chart); err != nil {
					return err
				}
				rootConfig.logger.Info("Factor chart written", "path", out.Chart)
			}

			if out.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			rootConfig.logger.Debug("Rendering result", log.GPAKey, res.PredictedGPA)
			return report.Text(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&(config.input), "input", "i", "", "path to a .json, .yaml or .yml student record, or - for JSON on stdin (required)")
	cmd.Flags().StringVarP(&(config.format), "format", "f", "", "output format: text or json (overrides output.format)")
	cmd.Flags().StringVar(&(config.chart), "chart", "", "write a key-factor bar chart to this .png or .svg path (overrides output.chart)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.input == "" {
		return errors.NewValidationError("input", "required input flag was not set", pcc.input)
	}
	return nil
}
