package wordsapi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name    string
		rootDir string
		word    string
		want    string
	}{
		{
			name:    "simple word",
			rootDir: "wordsapi",
			word:    "hello",
			want:    filepath.Join("wordsapi", "hello.json"),
		},
		{
			name:    "words are normalized to lower case",
			rootDir: "wordsapi",
			word:    "Hello",
			want:    filepath.Join("wordsapi", "hello.json"),
		},
		{
			name:    "word with an apostrophe",
			rootDir: "cache",
			word:    "don't",
			want:    filepath.Join("cache", "don't.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(tt.rootDir)
			assert.Equal(t, tt.want, cache.filePath(tt.word))
		})
	}
}

func TestFileCache_cache(t *testing.T) {
	t.Run("miss fetches and stores", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)

		fetchCount := 0
		contents, err := cache.cache("cat", func() ([]byte, error) {
			fetchCount++
			return []byte(`{"word":"cat"}`), nil
		})

		require.NoError(t, err)
		assert.Equal(t, `{"word":"cat"}`, string(contents))
		assert.Equal(t, 1, fetchCount)

		stored, err := os.ReadFile(filepath.Join(dir, "cat.json"))
		require.NoError(t, err)
		assert.Equal(t, `{"word":"cat"}`, string(stored))
	})

	t.Run("hit skips the fetch", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.json"), []byte(`{"word":"cat"}`), 0644))

		contents, err := cache.cache("cat", func() ([]byte, error) {
			t.Error("fetch should not run on a cache hit")
			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, `{"word":"cat"}`, string(contents))
	})

	t.Run("fetch failure surfaces", func(t *testing.T) {
		cache := NewFileCache(t.TempDir())

		_, err := cache.cache("cat", func() ([]byte, error) {
			return nil, errors.New("connection refused")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("missing cache directory is created on store", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "cache")
		cache := NewFileCache(dir)

		contents, err := cache.cache("cat", func() ([]byte, error) {
			return []byte(`{"word":"cat"}`), nil
		})

		require.NoError(t, err)
		assert.Equal(t, `{"word":"cat"}`, string(contents))
		_, err = os.Stat(filepath.Join(dir, "cat.json"))
		assert.NoError(t, err)
	})
}
