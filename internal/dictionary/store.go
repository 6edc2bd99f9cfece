package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Store holds the word corpus in memory. Load it once before handing it to
// matchers; after loading, the store is read-only and safe for any number of
// concurrent readers.
type Store struct {
	entries  []Entry
	byWord   map[string]int
	prefixes *patricia.Trie
}

func NewStore() *Store {
	return &Store{
		byWord:   make(map[string]int),
		prefixes: patricia.NewTrie(),
	}
}

// Load reads a newline-delimited corpus, one
// "<word><whitespace><pos>.<senses>" entry per line. Malformed lines are
// skipped, not fatal: corpora are often only partially well formed.
func (s *Store) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lines := 0
	skipped := 0
	for scanner.Scan() {
		lines++
		entry, ok := parseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		s.add(entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan > %w", err)
	}
	if skipped > 0 {
		slog.Default().Debug("skipped malformed corpus lines",
			"skipped", skipped,
			"lines", lines,
		)
	}
	return nil
}

// LoadFile loads the corpus stored at path.
func (s *Store) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := s.Load(file); err != nil {
		return fmt.Errorf("s.Load > %w", err)
	}
	return nil
}

func (s *Store) add(entry Entry) {
	word := strings.ToLower(entry.Word)
	if _, ok := s.byWord[word]; !ok {
		s.byWord[word] = len(s.entries)
		s.prefixes.Insert(patricia.Prefix(word), len(s.entries))
	}
	s.entries = append(s.entries, entry)
}

// parseLine splits a corpus line into an entry. The boolean reports whether
// the line was well formed.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	separator := strings.IndexFunc(line, unicode.IsSpace)
	if separator < 0 {
		return Entry{}, false
	}
	word := line[:separator]
	rest := strings.TrimSpace(line[separator:])

	pos, meaning, found := strings.Cut(rest, ".")
	if !found {
		return Entry{}, false
	}
	pos = strings.TrimSpace(pos)
	meaning = strings.TrimSpace(meaning)
	if pos == "" || meaning == "" {
		return Entry{}, false
	}

	return Entry{
		Word:         word,
		PartOfSpeech: pos,
		Meaning:      meaning,
	}, true
}

// FindByWord returns the entry for a word, matched case-insensitively. When
// the corpus holds several entries for the same word, the first-loaded entry
// wins.
func (s *Store) FindByWord(word string) (Entry, bool) {
	index, ok := s.byWord[strings.ToLower(word)]
	if !ok {
		return Entry{}, false
	}
	return s.entries[index], true
}

// FindByPrefix returns up to limit entries whose words start with prefix,
// case-insensitively, in alphabetical word order. A limit of zero or less
// means no limit.
func (s *Store) FindByPrefix(prefix string, limit int) []Entry {
	var matches []Entry
	_ = s.prefixes.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)),
		func(p patricia.Prefix, item patricia.Item) error {
			matches = append(matches, s.entries[item.(int)])
			return nil
		})

	sort.Slice(matches, func(i, j int) bool {
		return strings.ToLower(matches[i].Word) < strings.ToLower(matches[j].Word)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Entries returns all corpus entries in load order. The returned slice is a
// copy; mutating it never touches the store.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of loaded entries, duplicate words included.
func (s *Store) Len() int {
	return len(s.entries)
}

// Stats summarizes the loaded corpus. SensesPerEntry is 0 for an empty
// corpus.
type Stats struct {
	Entries        int
	DistinctWords  int
	Senses         int
	SensesPerEntry float64
	ByPartOfSpeech map[string]int
}

func (s *Store) Stats() Stats {
	stats := Stats{
		Entries:        len(s.entries),
		DistinctWords:  len(s.byWord),
		ByPartOfSpeech: make(map[string]int),
	}
	for _, entry := range s.entries {
		stats.ByPartOfSpeech[entry.PartOfSpeech]++
		stats.Senses += len(entry.Senses())
	}
	if stats.Entries > 0 {
		stats.SensesPerEntry = float64(stats.Senses) / float64(stats.Entries)
	}
	return stats
}
