package router

import (
	"strconv"
	"strings"
)

// ExtractPriceRange parses numeric price bound(s) from a message. Three
// mutually exclusive forms are tried in order: "under N" → max, "N - M" →
// min and max, "above N" → min. Returns nil when none match. Integers only;
// malformed numbers simply fail to match.
func ExtractPriceRange(message string) *PriceRange {
	if m := underPattern.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return &PriceRange{Max: &v}
		}
	}

	if m := rangePattern.FindStringSubmatch(message); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil {
			return &PriceRange{Min: &lo, Max: &hi}
		}
	}

	if m := abovePattern.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return &PriceRange{Min: &v}
		}
	}

	return nil
}

// CleanSearchTerm strips price-related tokens (under/above, currency
// markers, digits, hyphens) from a message and collapses whitespace,
// leaving the part worth sending to product search.
func CleanSearchTerm(message string) string {
	cleaned := priceTokenPattern.ReplaceAllString(message, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
