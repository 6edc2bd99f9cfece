package wordsapi

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores raw provider responses on disk, one JSON file per word.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(word string) string {
	return filepath.Join(cache.rootDir, strings.ToLower(word)+".json")
}

// cache returns the stored response for word, calling fetch and storing its
// result on a miss. A store failure does not fail the lookup; the word is
// simply fetched again next time.
func (cache *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	path := cache.filePath(word)
	if contents, err := os.ReadFile(path); err == nil {
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch %s > %w", word, err)
	}

	if err := cache.store(path, contents); err != nil {
		slog.Default().Warn("could not store a translation cache entry",
			"path", path,
			"error", err,
		)
	}
	return contents, nil
}

func (cache *FileCache) store(path string, contents []byte) error {
	if err := os.MkdirAll(cache.rootDir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
