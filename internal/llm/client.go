// Package llm provides a provider-agnostic interface for text generation.
// The orchestrator only needs one capability — prompt in, text out — so the
// interface stays small. Both Anthropic (Claude) and OpenAI implement it,
// letting the generator fall back across an ordered list of (provider, model)
// pairs: most capable first, cheapest last.
package llm

import "context"

// Client is the interface for a single (provider, model) pair.
//
// Go interface design tip: keep interfaces small. One method of substance —
// that's ideal. Go proverb: "The bigger the interface, the weaker the
// abstraction."
type Client interface {
	// Generate sends one prompt and returns the model's text reply.
	Generate(ctx context.Context, prompt string) (string, error)
	ProviderName() string
	ModelName() string
}
