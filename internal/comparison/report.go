package comparison

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/gzip"
	"github.com/mattn/go-isatty"

	"toonbench/internal/formats"
	"toonbench/internal/providers"
)

var json = jsoniter.Config{IndentionStep: 2, EscapeHTML: true}.Froze()

// Save writes the report (without the detailed token dump) as indented JSON
// into dir and returns the file path.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("comparison: ensure output directory: %w", err)
	}

	slim := *r
	slim.Detailed = nil
	data, err := json.Marshal(&slim)
	if err != nil {
		return "", fmt.Errorf("comparison: encode report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("comparison_%s.json", r.RunID))
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("comparison: write report: %w", err)
	}
	return path, nil
}

// SaveDetailed writes the per-token breakdown as gzip-compressed JSON; the
// dump repeats every token string and compresses well.
func (r *Report) SaveDetailed(dir string) (string, error) {
	if len(r.Detailed) == 0 {
		return "", fmt.Errorf("comparison: report has no detailed results")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("comparison: ensure output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("tokens_%s.json.gz", r.RunID))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("comparison: create token dump: %w", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(r.Detailed); err != nil {
		zw.Close()
		return "", fmt.Errorf("comparison: encode token dump: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("comparison: write token dump: %w", err)
	}
	return path, nil
}

// baseline returns each provider's JSON-format token count, the reference
// the other formats are compared against.
func (r *Report) baseline() map[string]int {
	base := make(map[string]int)
	for _, row := range r.Results {
		if row.Format == formats.JSON {
			base[row.Provider] = row.TotalTokens
		}
	}
	return base
}

// RenderTable writes the run summary as a table. Colors and styling follow
// whether w is an interactive terminal.
func (r *Report) RenderTable(w io.Writer) {
	base := r.baseline()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Provider", "Model", "Format", "Tokens", "Bytes", "Tok/Byte", "vs JSON"})
	for _, row := range r.Results {
		tw.AppendRow(table.Row{
			row.Provider,
			row.Model,
			row.Format,
			row.TotalTokens,
			row.ContentSizeBytes,
			fmt.Sprintf("%.4f", row.TokensPerByte),
			formatSavings(row, base),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	tw.Render()
}

func formatSavings(row providers.Count, base map[string]int) string {
	jsonTokens, ok := base[row.Provider]
	if !ok || jsonTokens == 0 || row.Format == formats.JSON {
		return "-"
	}
	delta := float64(row.TotalTokens-jsonTokens) / float64(jsonTokens) * 100
	return fmt.Sprintf("%+.1f%%", delta)
}
