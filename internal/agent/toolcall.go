package agent

import "strings"

// The chat prompt instructs the model to emit one of these fixed prefixes in
// place of a conversational reply when it wants a follow-up search.
const (
	sentinelImages  = "SEARCH_IMAGES:"
	sentinelReviews = "SEARCH_REVIEWS:"
	sentinelWeb     = "SEARCH_WEB:"
)

// toolKind tags the variants of a parsed chat reply.
type toolKind int

const (
	toolText toolKind = iota
	toolImages
	toolReviews
	toolWeb
)

// toolCall is the tagged result of parsing a model reply: either plain text
// or one of the three search tools with its argument. Dispatch happens on the
// parsed variant, not on raw substring checks scattered through the pipeline.
type toolCall struct {
	kind toolKind
	arg  string // venue name or web query; empty for toolText
}

// parseToolCall inspects the model's raw text for a tool sentinel, checked in
// fixed order: images, then reviews, then web. The argument is everything
// after the sentinel, whitespace-trimmed. Anything without a sentinel is
// plain text — phrasing drift falls through silently rather than erroring.
func parseToolCall(response string) toolCall {
	for _, probe := range []struct {
		sentinel string
		kind     toolKind
	}{
		{sentinelImages, toolImages},
		{sentinelReviews, toolReviews},
		{sentinelWeb, toolWeb},
	} {
		if _, after, ok := strings.Cut(response, probe.sentinel); ok {
			arg := strings.TrimSpace(after)
			if arg == "" {
				// A bare sentinel with no target is unusable — treat as text.
				continue
			}
			return toolCall{kind: probe.kind, arg: arg}
		}
	}
	return toolCall{kind: toolText}
}
