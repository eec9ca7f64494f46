// Package mock supplies the static fallback venues used when every
// generation model is down. It implements agent.FallbackProvider so the
// pipeline receives it by injection — tests substitute their own.
package mock

import (
	"fmt"
	"strings"

	"github.com/vibescout/vibescout/internal/model"
)

// baseVenues is the curated emergency data set. Entries are copied and
// adapted per request, never mutated in place.
var baseVenues = []model.Venue{
	{
		ID:            "mock-1",
		Name:          "The Winter Terrace",
		Location:      model.GeoPoint{Address: "Lagos Island, Nigeria", Lat: 6.45, Lng: 3.42},
		PriceLevel:    3,
		VibeScore:     92,
		VibeSummary:   "High-energy outdoor lounge with premium seasonal lights and Afrobeat fusion.",
		WorthItFactor: "Definitely worth it for the views, but book early.",
		Pros:          []string{"Stunning skyline views", "Trendy crowd", "Seasonal cocktails"},
		Cons:          []string{"Wait times can be long", "Valet parking is chaotic"},
		SocialHighlights: []model.SocialSnippet{
			{
				Platform:  model.PlatformTikTok,
				Content:   "The lights here are insane! Best seasonal vibe in town.",
				Sentiment: model.SentimentPositive,
			},
			{
				Platform:  model.PlatformX,
				Content:   "Winter Terrace is actually worth the hype this year.",
				Sentiment: model.SentimentPositive,
			},
		},
		ImageURL: "https://images.unsplash.com/photo-1543007630-9710e4a00a20?auto=format&fit=crop&w=800&q=80",
		Website:  "https://winterterrace.com",
		SocialLinks: &model.SocialLinks{
			Instagram: "https://instagram.com/winterterrace",
			TikTok:    "https://tiktok.com/@winterterrace",
			Twitter:   "https://twitter.com/winterterrace",
		},
		UserReviews: []model.UserReview{
			{
				Author:   "Sarah M.",
				Rating:   5,
				Comment:  "Absolutely stunning views! The ambiance is perfect for a special night out. The cocktails are pricey but worth every penny.",
				Date:     "2024-12-15",
				Platform: "google",
			},
			{
				Author:   "ChiChi_Lagos",
				Rating:   4,
				Comment:  "Great vibe and the DJ was amazing! Just be prepared to wait if you don't have a reservation.",
				Date:     "2024-12-18",
				Platform: "instagram",
			},
			{
				Author:   "Michael O.",
				Rating:   5,
				Comment:  "Best rooftop experience around! The decorations this year are next level.",
				Date:     "2024-12-20",
				Platform: "google",
			},
			{
				Author:   "Tunde A.",
				Rating:   4,
				Comment:  "Love the energy here! Perfect spot for a date night or hanging with friends.",
				Date:     "2024-12-10",
				Platform: "yelp",
			},
		},
		PriceBreakdown:         "Cocktails: $15, Entry: $20, Small plates: $12",
		CostFriendlinessReview: "Pricey, but the view earns it.",
	},
	{
		ID:            "mock-2",
		Name:          "Neon Alley Social Club",
		Location:      model.GeoPoint{Address: "Victoria Island, Nigeria", Lat: 6.43, Lng: 3.41},
		PriceLevel:    2,
		VibeScore:     85,
		VibeSummary:   "Retro arcade bar with craft mocktails and a crowd that actually dances.",
		WorthItFactor: "Great for groups, and weeknights skip the queue.",
		Pros:          []string{"Affordable drinks", "Free arcade classics", "Friendly staff"},
		Cons:          []string{"Gets loud after 10pm", "Cash-only bar upstairs"},
		SocialHighlights: []model.SocialSnippet{
			{
				Platform:  model.PlatformReddit,
				Content:   "Hidden gem — the arcade room upstairs is never crowded.",
				Sentiment: model.SentimentPositive,
			},
			{
				Platform:  model.PlatformReviews,
				Content:   "Drinks are solid, music can be hit or miss.",
				Sentiment: model.SentimentNeutral,
			},
		},
		PriceBreakdown:         "Drinks: $8, Entry: free, Arcade tokens: $5",
		CostFriendlinessReview: "One of the best value nights out in the city.",
	},
}

// Provider implements agent.FallbackProvider with the static data set.
type Provider struct{}

// NewProvider creates the static fallback provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Venues returns the base set cosmetically adapted to the requested location:
// plain string interpolation into name, address, and summary — nothing
// model-driven, so the output is deterministic for a given input.
func (p *Provider) Venues(params model.SearchParameters) []model.Venue {
	adapted := make([]model.Venue, len(baseVenues))
	for i, v := range baseVenues {
		if !strings.Contains(v.Name, params.Location) {
			v.Name = fmt.Sprintf("%s (%s Edition)", v.Name, params.Location)
		}
		v.Location.Address = fmt.Sprintf("%s City Center", params.Location)
		v.VibeSummary = "(Offline Mode) " + v.VibeSummary
		adapted[i] = v
	}
	return adapted
}
