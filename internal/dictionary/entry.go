package dictionary

import (
	"strings"
)

// Entry represents a single corpus word with its part of speech and meaning.
// Meaning holds the native sense list, with senses separated by semicolons.
// ExternalMeaning is filled in lazily from a translator lookup, never stored
// back into the corpus; an empty string means no annotation.
type Entry struct {
	Word            string `yaml:"word"`
	PartOfSpeech    string `yaml:"part_of_speech"`
	Meaning         string `yaml:"meaning"`
	ExternalMeaning string `yaml:"external_meaning,omitempty"`
}

// Equal reports whether two entries refer to the same corpus word. Words
// compare case-insensitively; ExternalMeaning never participates in
// identity, so an enriched entry still equals its unenriched copy.
func (e Entry) Equal(other Entry) bool {
	return strings.EqualFold(e.Word, other.Word) &&
		e.PartOfSpeech == other.PartOfSpeech &&
		e.Meaning == other.Meaning
}

// Senses splits the meaning into its individual senses, trimmed, with empty
// segments dropped.
func (e Entry) Senses() []string {
	segments := strings.Split(e.Meaning, ";")
	senses := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		senses = append(senses, segment)
	}
	return senses
}
