package agent

import (
	"fmt"
	"strings"

	"github.com/vibescout/vibescout/internal/model"
)

// discoveryPrompt builds the single generation prompt for a discovery run.
// It embeds the user's preferences, whatever social context the search layer
// gathered, and an explicit output contract: a JSON array of venue objects.
// The field list mirrors model.Venue — the parser slices out the array and
// unmarshals it directly.
func discoveryPrompt(params model.SearchParameters, socialContext string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are the VibeScout Agent. Given these user preferences:
Location: %s
Budget: $%.0f
Occasion: %s
Social Snippets: %s

`, params.Location, params.Budget, params.Occasion, socialContext)

	if len(params.Interests) > 0 {
		fmt.Fprintf(&sb, "Interests: %s\n\n", strings.Join(params.Interests, ", "))
	}

	sb.WriteString(`Suggest 2-3 specific real-world venues. For each, provide:
1. Name (actual venue name)
2. Vibe Summary (1 sentence)
3. Vibe Score (0-100) based on social sentiment
4. Pros/Cons (specific to the occasion)
5. "Worth-It" factor (a witty verdict)
6. Real venue image URL from the venue's website or image search (NOT stock photo sites)
7. Official website URL if available
8. Social media links (Instagram, TikTok, Twitter/X handles or URLs)
9. 3-5 real user reviews from Google, Yelp, TripAdvisor, or social media
10. Price Breakdown (estimate for drinks/entry/food based on budget)
11. Cost Friendliness Review (1 sentence on value for money)

Return ONLY a JSON array of venue objects with these fields:
{
  "id": string,
  "name": string,
  "location": { "address": string, "lat": number, "lng": number },
  "priceLevel": number (1-4),
  "vibeScore": number (0-100),
  "vibeSummary": string,
  "worthItFactor": string,
  "pros": string[],
  "cons": string[],
  "socialHighlights": [{ "platform": "tiktok"|"x"|"reddit"|"instagram"|"reviews", "content": string, "sentiment": "positive"|"neutral"|"negative" }],
  "imageUrl": string (optional),
  "website": string (optional),
  "socialLinks": { "instagram": string, "tiktok": string, "twitter": string } (optional),
  "userReviews": [{ "author": string, "rating": number (1-5), "comment": string, "date": string, "platform": string }] (optional),
  "priceBreakdown": string (optional),
  "costFriendlinessReview": string (optional)
}
`)

	return sb.String()
}

// chatPrompt builds the concierge system prompt: a digest of the venues the
// user is looking at, their latest message, and the three tool sentinels the
// model may emit instead of a conversational reply.
func chatPrompt(venues []model.Venue, lastMessage string) string {
	digests := make([]string, 0, len(venues))
	for i, v := range venues {
		price := v.PriceBreakdown
		if price == "" {
			price = "Unknown Price"
		}
		digests = append(digests, fmt.Sprintf("Venue %d: %s (%s)\nVibe: %s\nAddress: %s\n",
			i+1, v.Name, price, v.VibeSummary, v.Location.Address))
	}

	return fmt.Sprintf(`You are VibeScout, a witty and helpful concierge.
You are currently chatting with a user who is looking at these venues:

%s

The user just said: %q

Your goal is to answer their question helpfully.

TOOLS AVAILABLE:
- If they ask for "more photos" or "images" of a specific place, reply with: "%s <venue_name>"
- If they ask for "reviews" or "what people say" about a specific place, reply with: "%s <venue_name>"
- If they ask for "more info", "website", or general details about a place, reply with: "%s <query>"

Otherwise, just reply conversationally. Keep it brief (under 2 sentences) as this is spoken out loud.
`, strings.Join(digests, "\n---\n"), lastMessage, sentinelImages, sentinelReviews, sentinelWeb)
}
