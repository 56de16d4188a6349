package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SuggestionThreshold is the minimum similarity ratio for Suggest to
// propose a candidate.
const SuggestionThreshold = 0.7

// Suggest returns the candidate most similar to input, or "" when none
// reaches SuggestionThreshold. Similarity is 1 - distance/longest where
// distance is the case-insensitive Levenshtein distance.
func Suggest(input string, candidates []string) string {
	dmp := diffmatchpatch.New()
	needle := strings.ToLower(input)

	best, bestRatio := "", 0.0
	for _, c := range candidates {
		longest := max(utf8.RuneCountInString(needle), utf8.RuneCountInString(c))
		if longest == 0 {
			continue
		}
		distance := dmp.DiffLevenshtein(dmp.DiffMain(needle, strings.ToLower(c), false))
		ratio := 1 - float64(distance)/float64(longest)
		if ratio >= SuggestionThreshold && ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}
