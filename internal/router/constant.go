package router

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// productWords are common product nouns that force the search intent,
// singular/plural pairs.
var productWords = []string{
	"shirt", "shirts",
	"phone", "phones",
	"book", "books",
	"shoe", "shoes",
	"watch", "watches",
}

// categoryWords force the category intent when no specific category name
// is present.
var categoryWords = []string{"category", "section", "department"}

// Price signal patterns. priceSignalPattern is deliberately broad (any
// digit or hyphen counts): a message that mentions numbers is treated as
// a product search.
var (
	priceSignalPattern = regexp.MustCompile(`(?i)under|above|rs\.?|₹|\d+|-`)

	underPattern = regexp.MustCompile(`(?i)under (?:rs\.?|₹)?(\d+)`)
	rangePattern = regexp.MustCompile(`(?i)(?:rs\.?|₹)?(\d+) ?- ?(?:rs\.?|₹)?(\d+)`)
	abovePattern = regexp.MustCompile(`(?i)above (?:rs\.?|₹)?(\d+)`)

	priceTokenPattern = regexp.MustCompile(`(?i)under|above|rs\.?|₹|\d+|-`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)
