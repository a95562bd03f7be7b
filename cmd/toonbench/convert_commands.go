package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"toonbench/internal/formats"
	"toonbench/toon"
)

// readInput returns the content of the file argument, or stdin when the
// argument is absent or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newEncodeCommand() *cobra.Command {
	var fromFlag string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Convert JSON or CSV records to TOON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			from, err := formats.Parse(fromFlag)
			if err != nil {
				return err
			}
			ds, err := formats.Load(input, from)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), toon.Encode(ds))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "json", "Input format (json, csv)")
	return cmd
}

func newDecodeCommand() *cobra.Command {
	var strategyFlag string
	var strictFlag bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Convert TOON records to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}

			strategy, err := formats.ParseJSONStrategy(strategyFlag)
			if err != nil {
				return err
			}

			var ds toon.Dataset
			if strictFlag {
				ds, err = toon.DecodeStrict(input)
				if err != nil {
					return err
				}
			} else {
				ds = toon.Decode(input)
			}

			out, err := formats.MarshalDataset(ds, strategy)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyFlag, "strategy", "pretty", "JSON layout strategy for the output")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Fail on malformed lines instead of skipping them")
	return cmd
}
