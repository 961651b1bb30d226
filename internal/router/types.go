package router

// Intent represents the user's intention.
type Intent string

const (
	IntentSearch    Intent = "search"
	IntentCategory  Intent = "category"
	IntentRecommend Intent = "recommend"
	IntentCart      Intent = "cart"
	IntentHelp      Intent = "help"
	IntentGeneral   Intent = "general"
)

// Output is the structured result of classifying one utterance.
type Output struct {
	Intent      Intent
	Category    string // set for category intent when a known category name matched
	SearchQuery string // the full utterance, set for search intent
}

// PriceRange holds the numeric bound(s) parsed from an utterance.
// A nil bound means unbounded on that side.
type PriceRange struct {
	Min *int
	Max *int
}
