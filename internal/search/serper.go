package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// contextCharBudget bounds the VibeContext digest so it can't blow up the
// generation prompt.
const contextCharBudget = 4000

// imageCandidates is how many raw image results we request — more than we
// need, so the list survives denylist filtering.
const imageCandidates = 15

// imageHostDenylist lists platforms whose image URLs render broken or
// forbidden when embedded. Matched against the URL host, subdomains included.
var imageHostDenylist = []string{"tiktok.com", "facebook.com"}

// SerperClient implements Client against google.serper.dev.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSerperClient creates a search client. baseURL is overridable for tests;
// pass "" for the production endpoint.
func NewSerperClient(apiKey string, baseURL string, logger *zap.Logger) *SerperClient {
	if baseURL == "" {
		baseURL = "https://google.serper.dev"
	}
	return &SerperClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// serperRequest is the JSON body both the /search and /images endpoints take.
type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperSearchResponse struct {
	Organic []Result `json:"organic"`
}

type serperImageResponse struct {
	Images []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"images"`
}

// Search runs a generic web search. Non-2xx responses become a *ProviderError.
func (s *SerperClient) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}

	var resp serperSearchResponse
	if err := s.post(ctx, "/search", serperRequest{Q: query, Num: limit}, &resp); err != nil {
		return nil, err
	}
	return resp.Organic, nil
}

// SearchSocialBuzz is Search with a wider net for sentiment gathering.
func (s *SerperClient) SearchSocialBuzz(ctx context.Context, query string) ([]Result, error) {
	return s.Search(ctx, query, 10)
}

// SearchImages returns image URLs in provider rank order with denylisted
// hosts removed. Provider errors are logged and swallowed — an empty list
// means "no enrichment available", which every caller handles.
func (s *SerperClient) SearchImages(ctx context.Context, query string) []string {
	var resp serperImageResponse
	if err := s.post(ctx, "/images", serperRequest{Q: query, Num: imageCandidates}, &resp); err != nil {
		s.logger.Warn("image search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}

	urls := make([]string, 0, len(resp.Images))
	for _, img := range resp.Images {
		if img.ImageURL == "" || hostDenied(img.ImageURL) {
			continue
		}
		urls = append(urls, img.ImageURL)
	}
	return urls
}

// VibeContext issues three canned queries concurrently — two platform-scoped
// social searches plus a generic review search — and folds the hits into one
// prompt-sized digest. If any query fails the whole gather is abandoned and
// the sentinel is returned: context is best-effort, the run continues either way.
func (s *SerperClient) VibeContext(ctx context.Context, location, occasion string) string {
	queries := []string{
		fmt.Sprintf("site:tiktok.com trending fun places in %s for %s", location, occasion),
		fmt.Sprintf("site:x.com must visit %s %s spots", location, occasion),
		fmt.Sprintf("recent reviews for fun spots in %s", location),
	}

	results := make([][]Result, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			results[i], errs[i] = s.SearchSocialBuzz(ctx, q)
		}(i, q)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Warn("vibe context gathering failed", zap.Error(err))
			return NoContextSentinel
		}
	}

	var parts []string
	for _, batch := range results {
		for _, r := range batch {
			parts = append(parts, fmt.Sprintf("[%s]: %s", r.Title, r.Snippet))
		}
	}
	if len(parts) == 0 {
		return NoContextSentinel
	}

	digest := strings.Join(parts, "\n---\n")
	if len(digest) > contextCharBudget {
		digest = digest[:contextCharBudget]
	}
	return digest
}

// post sends one JSON request to a serper endpoint and decodes the response.
func (s *SerperClient) post(ctx context.Context, endpoint string, body serperRequest, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling search provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// hostDenied reports whether the URL's host is a denylisted platform or one
// of its subdomains.
func hostDenied(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, denied := range imageHostDenylist {
		if host == denied || strings.HasSuffix(host, "."+denied) {
			return true
		}
	}
	return false
}
