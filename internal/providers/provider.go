package providers

import (
	"context"
	"time"

	"toonbench/internal/formats"
)

// Count is the result of one token counting call.
type Count struct {
	TotalTokens      int            `json:"total_tokens"`
	Model            string         `json:"model"`
	Provider         string         `json:"provider"`
	Format           formats.Format `json:"format_type"`
	ContentSizeBytes int            `json:"content_size_bytes"`
	TokensPerByte    float64        `json:"tokens_per_byte"`
	Timestamp        time.Time      `json:"timestamp"`
}

// DetailedCount adds the individual token breakdown where the tokenizer
// exposes one; providers that only report totals leave the slices empty.
type DetailedCount struct {
	Count
	TokenIDs []int    `json:"token_ids"`
	Tokens   []string `json:"tokens"`
}

// Provider counts tokens for a rendered dataset on one tokenizer family.
type Provider interface {
	// Name returns the short provider identifier ("anthropic", "openai", ...).
	Name() string

	// Models returns commonly used model identifiers for this provider,
	// most preferred first.
	Models() []string

	// CountTokens counts total tokens for content rendered in format.
	CountTokens(ctx context.Context, model, content string, format formats.Format) (Count, error)

	// CountTokensDetailed additionally reports individual tokens where
	// available.
	CountTokensDetailed(ctx context.Context, model, content string, format formats.Format) (DetailedCount, error)
}

// newCount fills the derived fields every provider reports the same way.
func newCount(provider, model string, format formats.Format, content string, totalTokens int) Count {
	size := len(content)
	perByte := 0.0
	if size > 0 {
		perByte = float64(totalTokens) / float64(size)
	}
	return Count{
		TotalTokens:      totalTokens,
		Model:            model,
		Provider:         provider,
		Format:           format,
		ContentSizeBytes: size,
		TokensPerByte:    perByte,
		Timestamp:        time.Now(),
	}
}
