package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
	"github.com/vibescout/vibescout/internal/search"
)

func chatHistory(content string) []model.ChatMessage {
	return []model.ChatMessage{{Role: model.RoleUser, Content: content}}
}

func contextVenues() []model.Venue {
	return []model.Venue{{
		ID:          "v1",
		Name:        "The Loft",
		Location:    model.GeoPoint{Address: "12 Marina Rd"},
		VibeSummary: "Cozy rooftop with live jazz.",
	}}
}

func tenImages() []string {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = "https://img.example/" + strings.Repeat("x", i+1) + ".jpg"
	}
	return urls
}

func TestChat_ImagesDispatch(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: "SEARCH_IMAGES: The Loft"},
	), testRatePerMinute, nil, zap.NewNop())
	searchClient := &fakeSearch{images: tenImages()}
	orch := newTestOrchestrator(gen, searchClient, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("show me more photos of The Loft"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Type != model.ReplyImages {
		t.Fatalf("expected images reply, got %q", reply.Type)
	}
	data, ok := reply.Data.([]string)
	if !ok {
		t.Fatalf("expected []string data, got %T", reply.Data)
	}
	if len(data) != 8 {
		t.Errorf("expected 8 images (capped), got %d", len(data))
	}
	if !strings.Contains(searchClient.imageQuery, "The Loft") ||
		!strings.Contains(searchClient.imageQuery, "interior aesthetic") {
		t.Errorf("unexpected image query %q", searchClient.imageQuery)
	}
	if !strings.Contains(reply.Text, "The Loft") {
		t.Errorf("reply text should mention the venue, got %q", reply.Text)
	}
}

func TestChat_ReviewsDispatch(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: "SEARCH_REVIEWS: The Loft"},
	), testRatePerMinute, nil, zap.NewNop())
	searchClient := &fakeSearch{results: []search.Result{
		{Title: "r1"}, {Title: "r2"}, {Title: "r3"}, {Title: "r4"}, {Title: "r5"},
	}}
	orch := newTestOrchestrator(gen, searchClient, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("what do people say?"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Type != model.ReplyReviews {
		t.Fatalf("expected reviews reply, got %q", reply.Type)
	}
	data, ok := reply.Data.([]search.Result)
	if !ok {
		t.Fatalf("expected []search.Result data, got %T", reply.Data)
	}
	if len(data) != 3 {
		t.Errorf("expected 3 reviews (capped), got %d", len(data))
	}
	if !strings.Contains(searchClient.searchQuery, "reviews for The Loft") {
		t.Errorf("unexpected search query %q", searchClient.searchQuery)
	}
}

func TestChat_WebDispatch(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: "SEARCH_WEB: The Loft opening hours"},
	), testRatePerMinute, nil, zap.NewNop())
	searchClient := &fakeSearch{results: []search.Result{
		{Title: "The Loft", Link: "https://theloft.example", Snippet: "Open till 2am on weekends."},
	}}
	orch := newTestOrchestrator(gen, searchClient, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("when do they close?"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Type != model.ReplyWebResults {
		t.Fatalf("expected web_results reply, got %q", reply.Type)
	}
	if !strings.Contains(reply.Text, "Open till 2am") {
		t.Errorf("reply text should summarize the top snippet, got %q", reply.Text)
	}
}

func TestChat_WebDispatchNoHits(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: "SEARCH_WEB: something obscure"},
	), testRatePerMinute, nil, zap.NewNop())
	orch := newTestOrchestrator(gen, &fakeSearch{}, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("tell me more"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Type != model.ReplyWebResults {
		t.Fatalf("expected web_results reply, got %q", reply.Type)
	}
	if !strings.Contains(reply.Text, "checked the web") {
		t.Errorf("expected generic message on no hits, got %q", reply.Text)
	}
}

func TestChat_PlainTextPassthrough(t *testing.T) {
	raw := "The Loft closes at 2am on weekends — plenty of time!"
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: raw},
	), testRatePerMinute, nil, zap.NewNop())
	orch := newTestOrchestrator(gen, &fakeSearch{}, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("when do they close?"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Type != model.ReplyText {
		t.Fatalf("expected text reply, got %q", reply.Type)
	}
	if reply.Text != raw {
		t.Errorf("expected the raw model text untouched, got %q", reply.Text)
	}
}

func TestChat_SentinelWithoutSearchClientFallsThrough(t *testing.T) {
	raw := "SEARCH_IMAGES: The Loft"
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: raw},
	), testRatePerMinute, nil, zap.NewNop())
	orch := newTestOrchestrator(gen, nil, nil)

	reply, err := orch.Chat(context.Background(), chatHistory("photos please"), contextVenues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Type != model.ReplyText || reply.Text != raw {
		t.Errorf("expected raw text fallthrough without a search client, got %+v", reply)
	}
}

func TestChat_GenerationFailurePropagates(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", err: errors.New("down")},
	), testRatePerMinute, nil, zap.NewNop())
	orch := newTestOrchestrator(gen, &fakeSearch{}, nil)

	_, err := orch.Chat(context.Background(), chatHistory("hello"), nil)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed to propagate, got %v", err)
	}
}

func TestChat_EmptyHistoryRejected(t *testing.T) {
	gen := NewGenerator(clientsOf(
		&stubClient{provider: "anthropic", model: "model-a", text: "hi"},
	), testRatePerMinute, nil, zap.NewNop())
	orch := newTestOrchestrator(gen, nil, nil)

	if _, err := orch.Chat(context.Background(), nil, nil); err == nil {
		t.Fatal("expected an error for empty message history")
	}
}

func TestParseToolCall(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind toolKind
		wantArg  string
	}{
		{name: "images", in: "SEARCH_IMAGES: The Loft", wantKind: toolImages, wantArg: "The Loft"},
		{name: "reviews", in: "SEARCH_REVIEWS: The Loft", wantKind: toolReviews, wantArg: "The Loft"},
		{name: "web", in: "SEARCH_WEB: loft opening hours", wantKind: toolWeb, wantArg: "loft opening hours"},
		{name: "sentinel mid-sentence", in: "Sure! SEARCH_IMAGES: The Loft", wantKind: toolImages, wantArg: "The Loft"},
		{name: "plain text", in: "It closes at 2am.", wantKind: toolText},
		{name: "bare sentinel", in: "SEARCH_IMAGES:", wantKind: toolText},
		{name: "empty", in: "", wantKind: toolText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseToolCall(tt.in)
			if got.kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", got.kind, tt.wantKind)
			}
			if got.arg != tt.wantArg {
				t.Errorf("arg = %q, want %q", got.arg, tt.wantArg)
			}
		})
	}
}
