// Package model defines the core data types for the VibeScout service.
// In Go, we use structs instead of classes. Struct tags (the `json:"..."` and
// `db:"..."` annotations) tell serialization libraries how to map fields.
package model

import "time"

// Platform identifies the social platform a snippet or review came from.
// Go doesn't have enums — we use typed string constants.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformX         Platform = "x"
	PlatformReddit    Platform = "reddit"
	PlatformInstagram Platform = "instagram"
	PlatformReviews   Platform = "reviews"
)

// Sentiment is the model-assigned tone of a social snippet.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SearchParameters is the immutable input to a discovery run.
// Occasion is free text ("birthday", "first date", ...).
type SearchParameters struct {
	Location   string   `json:"location"`
	Budget     float64  `json:"budget"`
	Age        int      `json:"age"`
	Occasion   string   `json:"occasion"`
	Interests  []string `json:"interests,omitempty"`
	IsSeasonal bool     `json:"isSeasonal,omitempty"`
}

// StepStatus tracks the lifecycle of a single agent step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepExecuting StepStatus = "executing"
	StepCompleted StepStatus = "completed"
	StepError     StepStatus = "error"
)

// AgentStep is one entry in the discovery run's append-only activity log.
// Steps are never mutated after creation and keep their creation order.
// ThoughtSignature is a decorative reasoning summary for the UI timeline —
// nothing in the pipeline branches on it.
type AgentStep struct {
	ID               string     `json:"id"`
	Timestamp        time.Time  `json:"timestamp"`
	Action           string     `json:"action"`
	Status           StepStatus `json:"status"`
	ThoughtSignature string     `json:"thoughtSignature,omitempty"`
}

// GeoPoint is a venue's street address plus coordinates.
type GeoPoint struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// SocialSnippet is a short piece of social buzz attached to a venue. Read-only.
type SocialSnippet struct {
	Platform  Platform  `json:"platform"`
	Content   string    `json:"content"`
	Sentiment Sentiment `json:"sentiment"`
	URL       string    `json:"url,omitempty"`
}

// UserReview is one user review the model surfaced for a venue.
type UserReview struct {
	Author   string  `json:"author"`
	Rating   float64 `json:"rating"` // 1-5
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
	Platform string  `json:"platform,omitempty"`
}

// SocialLinks holds a venue's social media presence.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Venue is the recommendation record — the main output of a discovery run.
// It is produced by parsing a model response, optionally mutated once by image
// enrichment, and otherwise immutable. Venues live for one discovery response;
// they are never persisted.
type Venue struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Location         GeoPoint        `json:"location"`
	PriceLevel       int             `json:"priceLevel"` // 1-4
	VibeScore        int             `json:"vibeScore"`  // 0-100
	VibeSummary      string          `json:"vibeSummary"`
	WorthItFactor    string          `json:"worthItFactor"`
	Pros             []string        `json:"pros"`
	Cons             []string        `json:"cons"`
	SocialHighlights []SocialSnippet `json:"socialHighlights"`

	// Optional enrichment fields — filled by search when a provider is configured.
	ImageURL               string       `json:"imageUrl,omitempty"`
	Website                string       `json:"website,omitempty"`
	SocialLinks            *SocialLinks `json:"socialLinks,omitempty"`
	UserReviews            []UserReview `json:"userReviews,omitempty"`
	PriceBreakdown         string       `json:"priceBreakdown,omitempty"` // e.g. "Cocktails: $15, Entry: $20"
	CostFriendlinessReview string       `json:"costFriendlinessReview,omitempty"`
}

// DiscoveryResult is the full response of one discovery run: the activity log
// plus the recommended venues.
type DiscoveryResult struct {
	Steps   []AgentStep `json:"steps"`
	Results []Venue     `json:"results"`
}
