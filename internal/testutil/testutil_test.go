package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alice-Cartelet/SimilarWords/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCorpusFile(t *testing.T) {
	tmpDir := t.TempDir()
	got := WriteCorpusFile(t, tmpDir,
		"cat n.a small animal",
		"bat n.a flying mammal",
	)

	assert.Equal(t, filepath.Join(tmpDir, "dictionary.txt"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "cat n.a small animal\nbat n.a flying mammal\n", string(content))
}

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, WithThreshold(0.8))

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	// Verify the generated file loads as a valid configuration.
	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "dictionary.txt"), cfg.Corpus.Path)
	assert.Equal(t, 0.8, cfg.Similarity.Threshold)
	assert.Equal(t, filepath.Join(tmpDir, "queries.yml"), cfg.Archive.Path)
	assert.Equal(t, filepath.Join(tmpDir, "translations"), cfg.Translator.RapidAPI.CacheDirectory)

	// The translation cache directory is created up front.
	info, err := os.Stat(filepath.Join(tmpDir, "translations"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
