package agent

import (
	"context"
	"fmt"

	"github.com/vibescout/vibescout/internal/model"
)

// Result caps for the chat tools. The UI renders at most this many items.
const (
	maxChatImages  = 8
	maxChatResults = 3
)

// Chat answers one concierge turn: it digests the venues the user is looking
// at into a system prompt, asks the generator once, and dispatches on the
// parsed tool call. Unlike discovery, chat has no fallback — a generation
// failure propagates to the caller.
func (o *Orchestrator) Chat(ctx context.Context, messages []model.ChatMessage, venues []model.Venue) (*model.ChatReply, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("chat requires at least one message")
	}
	lastMessage := messages[len(messages)-1].Content

	response, err := o.gen.Generate(ctx, chatPrompt(venues, lastMessage), model.CallChat)
	if err != nil {
		return nil, fmt.Errorf("chat generation: %w", err)
	}

	call := parseToolCall(response)

	// Tool dispatch needs a configured search client; without one every
	// sentinel falls through to plain text.
	if o.search == nil || call.kind == toolText {
		return &model.ChatReply{Text: response, Type: model.ReplyText}, nil
	}

	switch call.kind {
	case toolImages:
		images := o.search.SearchImages(ctx, call.arg+" interior aesthetic")
		return &model.ChatReply{
			Text: fmt.Sprintf("I found some fresh photos of %s for you! Check out these vibes.", call.arg),
			Data: capStrings(images, maxChatImages),
			Type: model.ReplyImages,
		}, nil

	case toolReviews:
		reviews, err := o.search.SearchSocialBuzz(ctx, "reviews for "+call.arg)
		if err != nil {
			// Search failures are never fatal — degrade to a text reply.
			return &model.ChatReply{Text: response, Type: model.ReplyText}, nil
		}
		return &model.ChatReply{
			Text: fmt.Sprintf("Here's what people are saying about %s.", call.arg),
			Data: reviews[:min(len(reviews), maxChatResults)],
			Type: model.ReplyReviews,
		}, nil

	case toolWeb:
		results, err := o.search.Search(ctx, call.arg, 5)
		if err != nil {
			return &model.ChatReply{Text: response, Type: model.ReplyText}, nil
		}
		text := fmt.Sprintf("I checked the web for %s.", call.arg)
		if len(results) > 0 {
			text = fmt.Sprintf("I found this about %s: %s", call.arg, results[0].Snippet)
		}
		return &model.ChatReply{
			Text: text,
			Data: results[:min(len(results), maxChatResults)],
			Type: model.ReplyWebResults,
		}, nil
	}

	return &model.ChatReply{Text: response, Type: model.ReplyText}, nil
}

func capStrings(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
