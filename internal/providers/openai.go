package providers

import (
	"context"
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"toonbench/internal/formats"
)

// OpenAI counts tokens locally with tiktoken BPE vocabularies; no API key
// or network call is needed for counting.
type OpenAI struct{}

// NewOpenAI creates an OpenAI provider.
func NewOpenAI() *OpenAI {
	return &OpenAI{}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Models() []string {
	return []string{
		"gpt-4o",
		"gpt-4-turbo",
		"gpt-4",
		"gpt-3.5-turbo",
	}
}

// encodingFor resolves the tokenizer for a model, falling back to
// cl100k_base for models tiktoken does not know yet.
func encodingFor(model string) (*tiktoken.Tiktoken, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err == nil {
		return enc, nil
	}
	enc, err = tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("providers: openai: load encoding: %w", err)
	}
	return enc, nil
}

func (o *OpenAI) CountTokens(ctx context.Context, model, content string, format formats.Format) (Count, error) {
	if err := ctx.Err(); err != nil {
		return Count{}, err
	}
	enc, err := encodingFor(model)
	if err != nil {
		return Count{}, err
	}
	ids := enc.Encode(content, nil, nil)
	return newCount(o.Name(), model, format, content, len(ids)), nil
}

func (o *OpenAI) CountTokensDetailed(ctx context.Context, model, content string, format formats.Format) (DetailedCount, error) {
	if err := ctx.Err(); err != nil {
		return DetailedCount{}, err
	}
	enc, err := encodingFor(model)
	if err != nil {
		return DetailedCount{}, err
	}

	ids := enc.Encode(content, nil, nil)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = enc.Decode([]int{id})
	}

	return DetailedCount{
		Count:    newCount(o.Name(), model, format, content, len(ids)),
		TokenIDs: ids,
		Tokens:   tokens,
	}, nil
}
