package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"toonbench/internal/formats"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com"
	anthropicAPIVersion = "2023-06-01"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Anthropic counts tokens through the messages count_tokens endpoint. The
// API reports totals only, so detailed counts carry no token breakdown.
type Anthropic struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAnthropic creates an Anthropic provider. The API key is required.
func NewAnthropic(apiKey string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("providers: anthropic requires an API key")
	}
	return &Anthropic{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Models() []string {
	return []string{
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
	}
}

type anthropicCountRequest struct {
	Model    string             `json:"model"`
	Messages []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicCountResponse struct {
	InputTokens int `json:"input_tokens"`
}

func (a *Anthropic) CountTokens(ctx context.Context, model, content string, format formats.Format) (Count, error) {
	body, err := json.Marshal(anthropicCountRequest{
		Model:    model,
		Messages: []anthropicMessage{{Role: "user", Content: content}},
	})
	if err != nil {
		return Count{}, fmt.Errorf("providers: anthropic: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages/count_tokens", bytes.NewReader(body))
	if err != nil {
		return Count{}, fmt.Errorf("providers: anthropic: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return Count{}, fmt.Errorf("providers: anthropic: count_tokens: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Count{}, fmt.Errorf("providers: anthropic: count_tokens: status %d: %s", resp.StatusCode, snippet)
	}

	var out anthropicCountResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Count{}, fmt.Errorf("providers: anthropic: decode response: %w", err)
	}

	return newCount(a.Name(), model, format, content, out.InputTokens), nil
}

func (a *Anthropic) CountTokensDetailed(ctx context.Context, model, content string, format formats.Format) (DetailedCount, error) {
	count, err := a.CountTokens(ctx, model, content, format)
	if err != nil {
		return DetailedCount{}, err
	}
	return DetailedCount{Count: count}, nil
}

// SetBaseURL overrides the API endpoint, used by tests.
func (a *Anthropic) SetBaseURL(url string) { a.baseURL = url }
