// Package testutil provides shared test helpers for creating config and corpus fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteCorpusFile writes corpus lines into a dictionary file under dir and
// returns the path of the written file.
func WriteCorpusFile(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.txt")
	contents := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// ConfigOption configures optional fields when creating a config fixture.
type ConfigOption func(*configFixture)

type configFixture struct {
	threshold float64
}

// WithThreshold overrides the similarity threshold written into the config fixture.
func WithThreshold(threshold float64) ConfigOption {
	return func(cfg *configFixture) {
		cfg.threshold = threshold
	}
}

// SetupTestConfig creates a config file pointing at a corpus, archive and
// translation cache inside tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	fixture := configFixture{
		threshold: 0.7,
	}
	for _, opt := range opts {
		opt(&fixture)
	}

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "translations"), 0755))

	configContent := fmt.Sprintf(`corpus:
  path: %s
similarity:
  threshold: %v
archive:
  path: %s
translator:
  rapidapi:
    cache_directory: %s
`,
		filepath.Join(tmpDir, "dictionary.txt"),
		fixture.threshold,
		filepath.Join(tmpDir, "queries.yml"),
		filepath.Join(tmpDir, "translations"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
