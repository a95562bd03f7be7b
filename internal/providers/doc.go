// Package providers implements token counting backends: the Anthropic and
// Gemini count endpoints over HTTP, local tiktoken BPE for OpenAI models,
// and an offline byte-length heuristic. All of them satisfy the Provider
// interface consumed by the comparison engine.
package providers
