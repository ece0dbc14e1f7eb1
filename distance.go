package spellcore

import "github.com/adrg/strutil/metrics"

// levenshtein is configured for the classic unit-cost edit distance. The
// comparison is case sensitive, unlike dictionary lookups, so suggestion
// ranking sees "Word" and "word" as one edit apart.
var levenshtein = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   1,
}

// editDistance returns the Levenshtein edit distance between a and b. An
// empty string is at distance len(other) from the other string.
func editDistance(a, b string) int {
	return levenshtein.Distance(a, b)
}
