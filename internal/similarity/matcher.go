package similarity

import (
	"fmt"
	"strings"

	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
)

// Threshold bounds accepted by FindSimilar.
const (
	MinThreshold = 0.5
	MaxThreshold = 1.0
)

// Matcher finds corpus words orthographically close to a query.
type Matcher struct {
	store *dictionary.Store
}

func NewMatcher(store *dictionary.Store) *Matcher {
	return &Matcher{store: store}
}

// FindSimilar returns every corpus entry whose similarity score against the
// query reaches the threshold. An exact case-insensitive match is moved to
// the front; the remaining entries keep corpus load order rather than being
// sorted by score.
func (m *Matcher) FindSimilar(query string, threshold float64) ([]dictionary.Entry, error) {
	if threshold < MinThreshold || threshold > MaxThreshold {
		return nil, fmt.Errorf("threshold %v is out of range [%v, %v]", threshold, MinThreshold, MaxThreshold)
	}

	loweredQuery := strings.ToLower(query)
	var exact *dictionary.Entry
	var results []dictionary.Entry
	for _, entry := range m.store.Entries() {
		word := strings.ToLower(entry.Word)
		if exact == nil && word == loweredQuery {
			match := entry
			exact = &match
			continue
		}
		if Score(word, loweredQuery) >= threshold {
			results = append(results, entry)
		}
	}

	if exact != nil {
		results = append([]dictionary.Entry{*exact}, results...)
	}
	return results, nil
}
