package synonym

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
	"github.com/Alice-Cartelet/SimilarWords/internal/translator"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTranslationTimeout bounds each translation lookup so one stuck
	// call cannot stall the whole resolution.
	DefaultTranslationTimeout = 5 * time.Second
	// DefaultMaxConcurrentTranslations bounds the enrichment fan-out.
	DefaultMaxConcurrentTranslations = 8
)

// Resolver derives synonyms for a corpus word from shared meaning senses,
// then enriches each candidate with an external translation when a
// translator is configured. A nil translator disables enrichment entirely:
// no lookup is ever attempted and every ExternalMeaning stays empty.
type Resolver struct {
	store      *dictionary.Store
	translator translator.Client

	translationTimeout        time.Duration
	maxConcurrentTranslations int
}

func NewResolver(store *dictionary.Store, translatorClient translator.Client) *Resolver {
	return &Resolver{
		store:                     store,
		translator:                translatorClient,
		translationTimeout:        DefaultTranslationTimeout,
		maxConcurrentTranslations: DefaultMaxConcurrentTranslations,
	}
}

// FindSynonyms returns the entry matching query followed by every other
// corpus entry sharing at least one meaning sense with it, deduplicated
// while preserving discovery order. A query absent from the corpus yields an
// empty result; that is a valid outcome, not an error.
func (r *Resolver) FindSynonyms(ctx context.Context, query string) ([]dictionary.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, ok := r.store.FindByWord(query)
	if !ok {
		return nil, nil
	}

	candidates := r.collectCandidates(base)
	r.translateAll(ctx, candidates)

	return dedupe(append([]dictionary.Entry{base}, candidates...)), nil
}

// collectCandidates scans the corpus once per sense of base and accumulates
// every other entry whose meaning contains that sense as a substring.
// Duplicate finds across senses are kept here; the final merge removes them.
func (r *Resolver) collectCandidates(base dictionary.Entry) []dictionary.Entry {
	entries := r.store.Entries()

	var candidates []dictionary.Entry
	for _, sense := range base.Senses() {
		for _, entry := range entries {
			if entry.Equal(base) {
				continue
			}
			if strings.Contains(entry.Meaning, sense) {
				candidates = append(candidates, entry)
			}
		}
	}
	return candidates
}

// translateAll fans translation lookups out over the candidates and waits
// until every attempt has settled. Each result lands in its own candidate's
// slot, so the final order never depends on completion order. A failed or
// timed-out lookup leaves that candidate's annotation empty and never fails
// the batch.
func (r *Resolver) translateAll(ctx context.Context, candidates []dictionary.Entry) {
	if r.translator == nil || len(candidates) == 0 {
		return
	}

	var group errgroup.Group
	group.SetLimit(r.maxConcurrentTranslations)
	for i := range candidates {
		group.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, r.translationTimeout)
			defer cancel()

			meaning, err := r.translator.Translate(callCtx, candidates[i].Word)
			if err != nil {
				slog.Default().Debug("translation lookup failed",
					"word", candidates[i].Word,
					"error", err,
				)
				return nil
			}
			candidates[i].ExternalMeaning = meaning
			return nil
		})
	}
	_ = group.Wait()
}

// dedupe removes duplicate entries while keeping the first occurrence of
// each in place. Identity ignores ExternalMeaning, so an enriched duplicate
// never displaces the copy discovered first.
func dedupe(entries []dictionary.Entry) []dictionary.Entry {
	type entryKey struct {
		word         string
		partOfSpeech string
		meaning      string
	}

	seen := make(map[entryKey]struct{}, len(entries))
	deduped := make([]dictionary.Entry, 0, len(entries))
	for _, entry := range entries {
		key := entryKey{
			word:         strings.ToLower(entry.Word),
			partOfSpeech: entry.PartOfSpeech,
			meaning:      entry.Meaning,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, entry)
	}
	return deduped
}
