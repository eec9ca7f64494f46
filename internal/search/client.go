// Package search wraps the Serper web/image search API used to ground venue
// recommendations in live data. Everything here is enrichment: callers treat
// a missing or failing search provider as "no data", never as a hard error.
package search

import (
	"context"
	"fmt"
)

// Result is one ranked web search hit. Results are transient — they live only
// within a single pipeline run.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Client is the interface the pipelines depend on. A nil Client means no
// search provider is configured — the pipelines degrade gracefully.
type Client interface {
	// Search runs a generic web search returning at most limit results.
	Search(ctx context.Context, query string, limit int) ([]Result, error)

	// SearchImages returns candidate image URLs in provider rank order, with
	// denylisted hosts removed. It never returns an error — provider failures
	// yield an empty list.
	SearchImages(ctx context.Context, query string) []string

	// SearchSocialBuzz is Search tuned for sentiment gathering (limit 10).
	SearchSocialBuzz(ctx context.Context, query string) ([]Result, error)

	// VibeContext gathers social buzz about a location and occasion into a
	// prompt-sized digest. Best-effort: any failure yields NoContextSentinel.
	VibeContext(ctx context.Context, location, occasion string) string
}

// NoContextSentinel is returned by VibeContext when no live data could be
// gathered. The discovery prompt embeds it verbatim.
const NoContextSentinel = "No real-time social data available."

// ProviderError reports a non-success HTTP status from the search provider.
// Callers check for it with errors.As; every call site converts it to
// empty-list or sentinel semantics.
type ProviderError struct {
	Endpoint string
	Status   int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("search provider %s returned HTTP %d", e.Endpoint, e.Status)
}
