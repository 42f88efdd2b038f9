package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gpacast/report"
	"github.com/YuminosukeSato/gpacast/student"
)

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the trained regression tree",
		Long:  `Train the regression tree on the built-in dataset and print its nodes and feature importances`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, model, err := rootConfig.trainedModel()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "depth=%d leaves=%d samples=%d\n\n", model.Depth(), model.NLeaves(), model.NSamples())
			fmt.Fprint(w, model.String())
			fmt.Fprintln(w)
			return report.Importances(w, student.Names(), model.FeatureImportances())
		},
	}
}
