package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "gpacast",
		Short: "gpacast predicts a student's GPA with a regression tree",
		Long: `gpacast trains a small regression tree on a built-in table of student
records and uses it to predict GPA, confidence, risk and advice for a new
student record`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.resolve(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&(config.configPath), "config", "c", "", "path to a YAML config file (defaults to $"+configEnv+")")
	flags.StringVar(&(config.logLevel), "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&(config.logFormat), "log-format", "", "log format: json or console")
	flags.IntVar(&(config.maxDepth), "max-depth", 0, "maximum depth of the regression tree")
	flags.IntVar(&(config.minSamples), "min-samples", 0, "sample count at or below which a node is not split")

	rootCmd.AddCommand(versionCmd(), predictCmd(config), treeCmd(config), evaluateCmd(config))
	return rootCmd
}
