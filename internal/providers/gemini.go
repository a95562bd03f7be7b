package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"toonbench/internal/formats"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini counts tokens through the Gemini API countTokens endpoint. Like
// Anthropic, the API reports totals only.
type Gemini struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGemini creates a Gemini provider. The API key is required.
func NewGemini(apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("providers: gemini requires an API key")
	}
	return &Gemini{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Models() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-2.0-flash",
		"gemini-1.5-pro",
	}
}

type geminiCountRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiCountResponse struct {
	TotalTokens int `json:"totalTokens"`
}

func (g *Gemini) CountTokens(ctx context.Context, model, content string, format formats.Format) (Count, error) {
	body, err := json.Marshal(geminiCountRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: content}}}},
	})
	if err != nil {
		return Count{}, fmt.Errorf("providers: gemini: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:countTokens", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Count{}, fmt.Errorf("providers: gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return Count{}, fmt.Errorf("providers: gemini: countTokens: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Count{}, fmt.Errorf("providers: gemini: countTokens: status %d: %s", resp.StatusCode, snippet)
	}

	var out geminiCountResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Count{}, fmt.Errorf("providers: gemini: decode response: %w", err)
	}

	return newCount(g.Name(), model, format, content, out.TotalTokens), nil
}

func (g *Gemini) CountTokensDetailed(ctx context.Context, model, content string, format formats.Format) (DetailedCount, error) {
	count, err := g.CountTokens(ctx, model, content, format)
	if err != nil {
		return DetailedCount{}, err
	}
	return DetailedCount{Count: count}, nil
}

// SetBaseURL overrides the API endpoint, used by tests.
func (g *Gemini) SetBaseURL(url string) { g.baseURL = url }
