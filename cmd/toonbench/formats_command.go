package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toonbench/internal/formats"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats and JSON strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, f := range formats.All() {
				fmt.Fprintf(out, "  %s\n", f)
			}
			fmt.Fprintln(out, "JSON strategies:")
			for _, s := range formats.AllJSONStrategies() {
				fmt.Fprintf(out, "  %s\n", s)
			}
			return nil
		},
	}
}
