package similarity

import (
	"github.com/hbollon/go-edlib"
)

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions, and substitutions
// needed to turn one string into the other. Strings are compared rune by
// rune, so multi-byte words count by character, not by byte.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Score normalizes the edit distance between a and b into a similarity in
// [0, 1]: 1 for identical strings, 0 for entirely different ones. Two empty
// strings score 1, there is nothing left to edit.
func Score(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(longest)
}
