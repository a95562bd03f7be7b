package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "toonbench",
		Short:         "Compare LLM token costs of JSON, CSV, and TOON renderings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "console", "Log format (console, json)")

	rootCmd.AddCommand(newCompareCommand(ctx))
	rootCmd.AddCommand(newEncodeCommand())
	rootCmd.AddCommand(newDecodeCommand())
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
