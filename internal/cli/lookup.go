package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Alice-Cartelet/SimilarWords/internal/archive"
	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
	"github.com/Alice-Cartelet/SimilarWords/internal/similarity"
	"github.com/Alice-Cartelet/SimilarWords/internal/synonym"
	"github.com/fatih/color"
)

// QueryKind distinguishes the two lookup operations when building
// archive labels.
type QueryKind string

const (
	QueryKindSimilar  QueryKind = "similar"
	QueryKindSynonyms QueryKind = "synonyms"
)

func queryLabel(word string, kind QueryKind) string {
	return fmt.Sprintf("%s (%s)", word, kind)
}

// LookupCLI runs the lookup commands and renders their results.
type LookupCLI struct {
	matcher      *similarity.Matcher
	resolver     *synonym.Resolver
	queryArchive *archive.Archive
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func NewLookupCLI(matcher *similarity.Matcher, resolver *synonym.Resolver, queryArchive *archive.Archive) *LookupCLI {
	return &LookupCLI{
		matcher:      matcher,
		resolver:     resolver,
		queryArchive: queryArchive,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// RunSimilar prints the corpus entries whose words are within threshold
// of word, and saves the results when requested.
func (c *LookupCLI) RunSimilar(word string, threshold float64, save bool) error {
	results, err := c.matcher.FindSimilar(word, threshold)
	if err != nil {
		return fmt.Errorf("matcher.FindSimilar > %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintf(c.stdoutWriter, "No words similar to %s were found\n", c.bold.Sprintf("%s", word))
		return nil
	}

	fmt.Fprintf(c.stdoutWriter, "Words similar to %s (%d entries)\n", c.bold.Sprintf("%s", word), len(results))
	c.printEntries(results)

	if save {
		return c.saveResults(queryLabel(word, QueryKindSimilar), results)
	}
	return nil
}

// RunSynonyms prints the entry for word together with the entries
// sharing one of its senses, and saves the results when requested.
func (c *LookupCLI) RunSynonyms(ctx context.Context, word string, save bool) error {
	results, err := c.resolver.FindSynonyms(ctx, word)
	if err != nil {
		return fmt.Errorf("resolver.FindSynonyms > %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintf(c.stdoutWriter, "No synonyms of %s were found\n", c.bold.Sprintf("%s", word))
		return nil
	}

	fmt.Fprintf(c.stdoutWriter, "Synonyms of %s (%d entries)\n", c.bold.Sprintf("%s", word), len(results))
	c.printEntries(results)

	if save {
		return c.saveResults(queryLabel(word, QueryKindSynonyms), results)
	}
	return nil
}

func (c *LookupCLI) printEntries(entries []dictionary.Entry) {
	for _, entry := range entries {
		fmt.Fprintf(c.stdoutWriter, "%s [%s] %s\n",
			c.bold.Sprintf("%s", entry.Word),
			entry.PartOfSpeech,
			entry.Meaning,
		)
		if entry.ExternalMeaning != "" {
			fmt.Fprintf(c.stdoutWriter, "    %s\n", c.italic.Sprintf("%s", entry.ExternalMeaning))
		}
	}
}

func (c *LookupCLI) saveResults(label string, results []dictionary.Entry) error {
	saved, err := c.queryArchive.Save(label, results)
	if err != nil {
		return fmt.Errorf("queryArchive.Save > %w", err)
	}
	if !saved {
		fmt.Fprintf(c.stdoutWriter, "A query %q is already saved\n", label)
		return nil
	}
	fmt.Fprintf(c.stdoutWriter, "Saved the results as %q\n", label)
	return nil
}
