package providers

import (
	"context"

	"toonbench/internal/formats"
)

// Estimate is an offline provider using the rule of thumb that ~4 bytes of
// English text cost one token. It needs no credentials and exists so the
// comparison can run without any API access.
type Estimate struct{}

// NewEstimate creates the heuristic provider.
func NewEstimate() *Estimate {
	return &Estimate{}
}

func (e *Estimate) Name() string { return "estimate" }

func (e *Estimate) Models() []string {
	return []string{"chars-div-4"}
}

// EstimateTokens estimates the token count of a text string.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}

func (e *Estimate) CountTokens(ctx context.Context, model, content string, format formats.Format) (Count, error) {
	if err := ctx.Err(); err != nil {
		return Count{}, err
	}
	return newCount(e.Name(), model, format, content, EstimateTokens(content)), nil
}

func (e *Estimate) CountTokensDetailed(ctx context.Context, model, content string, format formats.Format) (DetailedCount, error) {
	count, err := e.CountTokens(ctx, model, content, format)
	if err != nil {
		return DetailedCount{}, err
	}
	return DetailedCount{Count: count}, nil
}
