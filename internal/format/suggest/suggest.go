// Package suggest picks the closest known name for a mistyped one.
package suggest

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxDistance bounds how different a candidate may be and still be offered.
const maxDistance = 3

// Suggest returns the candidate closest to input, or "" when nothing is close.
// Subsequence matches are preferred; otherwise the candidate with the
// smallest edit distance wins.
func Suggest(input string, candidates []string) string {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(input, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(input), strings.ToLower(candidate))
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
