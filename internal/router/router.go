package router

import (
	"context"
	"strings"

	"ecoshop-assistant/internal/model"
)

// Classify determines user intent from a message. Rules are evaluated in a
// fixed priority order and the first match wins: a message that carries both
// a product noun and a category name is a search, not a category browse.
func (r *RuleRouter) Classify(ctx context.Context, message string) Output {
	lower := strings.ToLower(message)

	// 1. Product nouns or price signals force a search with the full
	// utterance as the query.
	if containsAny(lower, productWords) || priceSignalPattern.MatchString(lower) {
		out := Output{Intent: IntentSearch, SearchQuery: message}
		r.l.Infof(ctx, "%s: %q classified as %s", LogPrefixClassify, message, out.Intent)
		return out
	}

	// 2. Known category names, or generic browse words without one.
	for _, cat := range model.Categories {
		if strings.Contains(lower, cat) {
			out := Output{Intent: IntentCategory, Category: cat}
			r.l.Infof(ctx, "%s: %q classified as %s (%s)", LogPrefixClassify, message, out.Intent, cat)
			return out
		}
	}
	if containsAny(lower, categoryWords) {
		return Output{Intent: IntentCategory}
	}

	// 3-5. Keyword intents.
	if strings.Contains(lower, "recommend") || strings.Contains(lower, "suggest") {
		return Output{Intent: IntentRecommend}
	}
	if strings.Contains(lower, "cart") || strings.Contains(lower, "checkout") {
		return Output{Intent: IntentCart}
	}
	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return Output{Intent: IntentHelp}
	}

	// 6. Everything else goes to the generative delegate.
	return Output{Intent: IntentGeneral}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
