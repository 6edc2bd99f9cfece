package main

import (
	"path/filepath"
	"testing"

	"github.com/Alice-Cartelet/SimilarWords/internal/config"
	"github.com/Alice-Cartelet/SimilarWords/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir, testutil.WithThreshold(0.8))

	originalConfigFile := configFile
	configFile = cfgPath
	defer func() { configFile = originalConfigFile }()

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "dictionary.txt"), cfg.Corpus.Path)
	assert.Equal(t, 0.8, cfg.Similarity.Threshold)
	assert.Equal(t, filepath.Join(tmpDir, "queries.yml"), cfg.Archive.Path)
}

func TestLoadStore(t *testing.T) {
	t.Run("loads the configured corpus", func(t *testing.T) {
		path := testutil.WriteCorpusFile(t, t.TempDir(),
			"cat n.a small animal",
			"bat n.a flying mammal",
		)

		store := loadStore(&config.Config{
			Corpus: config.CorpusConfig{Path: path},
		})
		assert.Equal(t, 2, store.Len())
	})

	t.Run("a missing corpus degrades to an empty dictionary", func(t *testing.T) {
		store := loadStore(&config.Config{
			Corpus: config.CorpusConfig{Path: filepath.Join(t.TempDir(), "missing.txt")},
		})
		assert.Equal(t, 0, store.Len())
	})
}

func TestNewResolver(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.RapidAPIConfig
		noTranslate bool
	}{
		{
			name: "translation enabled",
			cfg:  config.RapidAPIConfig{Host: "example.p.rapidapi.com", Key: "secret"},
		},
		{
			name:        "translation disabled by flag",
			cfg:         config.RapidAPIConfig{Host: "example.p.rapidapi.com", Key: "secret"},
			noTranslate: true,
		},
		{
			name: "translation unconfigured",
			cfg:  config.RapidAPIConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Translator: config.TranslatorConfig{RapidAPI: tt.cfg},
			}
			cfg.Translator.RapidAPI.CacheDirectory = t.TempDir()

			resolver, closeTranslator := newResolver(cfg, loadStore(&config.Config{}), tt.noTranslate)
			defer closeTranslator()

			assert.NotNil(t, resolver)
		})
	}
}
