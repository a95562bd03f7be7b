package comparison

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"toonbench/internal/formats"
	"toonbench/internal/providers"
	"toonbench/internal/testdata"
)

// Options selects what one comparison run covers.
type Options struct {
	Size         testdata.Size
	Formats      []formats.Format
	JSONStrategy formats.JSONStrategy
	// Models overrides the model per provider name; providers not listed
	// use their first available model.
	Models   map[string]string
	Detailed bool
	// InputDir optionally supplies data.{json,csv,toon} files that replace
	// the rendered built-in dataset for their format.
	InputDir string
}

// Report is the outcome of one comparison run.
type Report struct {
	RunID        string                    `json:"run_id"`
	Timestamp    time.Time                 `json:"timestamp"`
	Size         string                    `json:"dataset_size"`
	JSONStrategy string                    `json:"json_strategy"`
	Results      []providers.Count         `json:"results"`
	Detailed     []providers.DetailedCount `json:"detailed,omitempty"`
	Failures     []string                  `json:"failures,omitempty"`
}

// Engine runs token count comparisons across providers and formats.
type Engine struct {
	providers []providers.Provider
	log       *slog.Logger
}

// New creates a comparison engine.
func New(provs []providers.Provider, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{providers: provs, log: log}
}

// Run renders the dataset in every requested format and asks every provider
// for its token count. A failing provider/format pair is recorded and
// skipped rather than aborting the run.
func (e *Engine) Run(ctx context.Context, opts Options) (*Report, error) {
	if len(e.providers) == 0 {
		return nil, fmt.Errorf("comparison: no providers configured")
	}
	if opts.Size == "" {
		opts.Size = testdata.Medium
	}
	if len(opts.Formats) == 0 {
		opts.Formats = formats.All()
	}
	if opts.JSONStrategy == "" {
		opts.JSONStrategy = formats.JSONPretty
	}

	rendered, err := e.renderAll(opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:        uuid.NewString(),
		Timestamp:    time.Now(),
		Size:         string(opts.Size),
		JSONStrategy: string(opts.JSONStrategy),
	}

	for _, provider := range e.providers {
		model := e.modelFor(provider, opts.Models)
		for _, format := range opts.Formats {
			content, ok := rendered[format]
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			e.log.Debug("counting tokens",
				"provider", provider.Name(), "model", model, "format", format)

			if opts.Detailed {
				detailed, err := provider.CountTokensDetailed(ctx, model, content, format)
				if err != nil {
					e.recordFailure(report, provider.Name(), format, err)
					continue
				}
				report.Results = append(report.Results, detailed.Count)
				report.Detailed = append(report.Detailed, detailed)
				continue
			}

			count, err := provider.CountTokens(ctx, model, content, format)
			if err != nil {
				e.recordFailure(report, provider.Name(), format, err)
				continue
			}
			report.Results = append(report.Results, count)
		}
	}

	if len(report.Results) == 0 {
		return nil, fmt.Errorf("comparison: every provider/format pair failed")
	}
	return report, nil
}

// renderAll produces the content per format, preferring input-dir override
// files over the rendered built-in dataset.
func (e *Engine) renderAll(opts Options) (map[formats.Format]string, error) {
	overrides, err := testdata.LoadInputs(opts.InputDir)
	if err != nil {
		return nil, err
	}

	ds, err := testdata.Dataset(opts.Size)
	if err != nil {
		return nil, err
	}

	rendered := make(map[formats.Format]string, len(opts.Formats))
	for _, format := range opts.Formats {
		if content, ok := overrides[format]; ok {
			e.log.Info("using input file", "format", format)
			rendered[format] = content
			continue
		}
		content, err := formats.Render(ds, format, opts.JSONStrategy)
		if err != nil {
			return nil, fmt.Errorf("comparison: render %s: %w", format, err)
		}
		rendered[format] = content
	}
	return rendered, nil
}

func (e *Engine) modelFor(provider providers.Provider, overrides map[string]string) string {
	if model, ok := overrides[provider.Name()]; ok && model != "" {
		return model
	}
	if models := provider.Models(); len(models) > 0 {
		return models[0]
	}
	return "unknown"
}

func (e *Engine) recordFailure(report *Report, provider string, format formats.Format, err error) {
	e.log.Warn("token count failed", "provider", provider, "format", format, "error", err)
	report.Failures = append(report.Failures, fmt.Sprintf("%s/%s: %v", provider, format, err))
}
