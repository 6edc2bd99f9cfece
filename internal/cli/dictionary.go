package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
	"github.com/fatih/color"
)

// DictionaryCLI runs the commands over the loaded corpus itself.
type DictionaryCLI struct {
	store        *dictionary.Store
	stdoutWriter io.Writer
	bold         *color.Color
}

func NewDictionaryCLI(store *dictionary.Store) *DictionaryCLI {
	return &DictionaryCLI{
		store:        store,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
	}
}

// RunComplete prints the corpus entries whose words start with prefix.
func (c *DictionaryCLI) RunComplete(prefix string, limit int) error {
	entries := c.store.FindByPrefix(prefix, limit)
	if len(entries) == 0 {
		fmt.Fprintf(c.stdoutWriter, "No words starting with %s were found\n", c.bold.Sprintf("%s", prefix))
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(c.stdoutWriter, "%s [%s] %s\n",
			c.bold.Sprintf("%s", entry.Word),
			entry.PartOfSpeech,
			entry.Meaning,
		)
	}
	return nil
}

// RunStats prints summary statistics of the loaded corpus.
func (c *DictionaryCLI) RunStats() error {
	stats := c.store.Stats()

	fmt.Fprintf(c.stdoutWriter, "Entries: %d\n", stats.Entries)
	fmt.Fprintf(c.stdoutWriter, "Distinct words: %d\n", stats.DistinctWords)
	fmt.Fprintf(c.stdoutWriter, "Senses: %d\n", stats.Senses)
	fmt.Fprintf(c.stdoutWriter, "Senses per entry: %.1f\n", stats.SensesPerEntry)

	if len(stats.ByPartOfSpeech) == 0 {
		return nil
	}
	fmt.Fprintln(c.stdoutWriter, "Entries by part of speech:")
	partsOfSpeech := make([]string, 0, len(stats.ByPartOfSpeech))
	for pos := range stats.ByPartOfSpeech {
		partsOfSpeech = append(partsOfSpeech, pos)
	}
	sort.Strings(partsOfSpeech)
	for _, pos := range partsOfSpeech {
		fmt.Fprintf(c.stdoutWriter, "  %s: %d\n", pos, stats.ByPartOfSpeech[pos])
	}
	return nil
}
