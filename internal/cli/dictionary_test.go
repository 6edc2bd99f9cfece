package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryCLI_RunComplete(t *testing.T) {
	corpus := "carton n.a cardboard box\n" +
		"Carp n.a freshwater fish\n" +
		"cartel n.a group of producers\n" +
		"dog n.a domestic animal\n"

	tests := []struct {
		name   string
		prefix string
		limit  int

		wantOutput string
	}{
		{
			name:   "prints matches in alphabetical order",
			prefix: "car",
			limit:  0,
			wantOutput: "Carp [n] a freshwater fish\n" +
				"cartel [n] a group of producers\n" +
				"carton [n] a cardboard box\n",
		},
		{
			name:   "a limit caps the matches",
			prefix: "car",
			limit:  2,
			wantOutput: "Carp [n] a freshwater fish\n" +
				"cartel [n] a group of producers\n",
		},
		{
			name:       "prints a message when nothing matches",
			prefix:     "zebra",
			limit:      0,
			wantOutput: "No words starting with zebra were found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			defer func() { color.NoColor = false }()

			var buf bytes.Buffer
			cli := &DictionaryCLI{
				store:        newTestStore(t, corpus),
				stdoutWriter: &buf,
				bold:         color.New(color.Bold),
			}

			require.NoError(t, cli.RunComplete(tt.prefix, tt.limit))
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestDictionaryCLI_RunStats(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	corpus := "cat n.a small animal; a feline\n" +
		"happy adj.feeling joy\n" +
		"glad adj.content; pleased\n"

	var buf bytes.Buffer
	cli := &DictionaryCLI{
		store:        newTestStore(t, corpus),
		stdoutWriter: &buf,
		bold:         color.New(color.Bold),
	}

	require.NoError(t, cli.RunStats())
	assert.Equal(t, "Entries: 3\n"+
		"Distinct words: 3\n"+
		"Senses: 5\n"+
		"Senses per entry: 1.7\n"+
		"Entries by part of speech:\n"+
		"  adj: 2\n"+
		"  n: 1\n",
		buf.String())
}

func TestDictionaryCLI_RunStats_EmptyCorpus(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	cli := &DictionaryCLI{
		store:        newTestStore(t, ""),
		stdoutWriter: &buf,
		bold:         color.New(color.Bold),
	}

	require.NoError(t, cli.RunStats())
	assert.Equal(t, "Entries: 0\nDistinct words: 0\nSenses: 0\nSenses per entry: 0.0\n", buf.String())
}
