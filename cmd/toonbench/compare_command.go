package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toonbench/internal/comparison"
	"toonbench/internal/formats"
	"toonbench/internal/testdata"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var (
		sizeFlag     string
		formatsFlag  []string
		strategyFlag string
		modelFlags   []string
		detailedFlag bool
		outputFlag   string
		inputFlag    string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the token count comparison across providers and formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			provs, err := ctx.buildProviders()
			if err != nil {
				return err
			}
			if len(provs) == 0 {
				return fmt.Errorf("no providers available; check config and API keys")
			}

			opts := comparison.Options{
				Size:     testdata.Size(sizeFlag),
				Detailed: detailedFlag,
				InputDir: inputFlag,
				Models:   ctx.defaultModels(),
			}

			if strategyFlag != "" {
				strategy, err := formats.ParseJSONStrategy(strategyFlag)
				if err != nil {
					return err
				}
				opts.JSONStrategy = strategy
			}

			requested := formatsFlag
			if len(requested) == 0 {
				requested = cfg.TestData.Formats
			}
			for _, name := range requested {
				format, err := formats.Parse(name)
				if err != nil {
					return err
				}
				opts.Formats = append(opts.Formats, format)
			}

			for _, pair := range modelFlags {
				provider, model, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid --model %q, want provider=model", pair)
				}
				opts.Models[provider] = model
			}

			engine := comparison.New(provs, log)
			report, err := engine.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			report.RenderTable(os.Stdout)
			for _, failure := range report.Failures {
				log.Warn("incomplete result", "pair", failure)
			}

			outDir := outputFlag
			if outDir == "" {
				outDir = cfg.TestData.OutputDir
			}
			path, err := report.Save(outDir)
			if err != nil {
				return err
			}
			log.Info("report saved", "path", path)

			if detailedFlag {
				gzPath, err := report.SaveDetailed(outDir)
				if err != nil {
					return err
				}
				log.Info("token dump saved", "path", gzPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sizeFlag, "size", "medium", "Dataset size (small, medium, large)")
	cmd.Flags().StringSliceVar(&formatsFlag, "format", nil, "Formats to compare (json, csv, toon); default from config")
	cmd.Flags().StringVar(&strategyFlag, "json-strategy", "pretty", "JSON layout strategy (pretty, compact, stringified, minimal)")
	cmd.Flags().StringArrayVar(&modelFlags, "model", nil, "Model override as provider=model (repeatable)")
	cmd.Flags().BoolVar(&detailedFlag, "detailed", false, "Collect per-token breakdowns where available")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory for result files (default from config)")
	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Directory with data.{json,csv,toon} override files")

	return cmd
}
