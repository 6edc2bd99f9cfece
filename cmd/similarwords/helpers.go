package main

import (
	"fmt"
	"log/slog"

	"github.com/Alice-Cartelet/SimilarWords/internal/config"
	"github.com/Alice-Cartelet/SimilarWords/internal/dictionary"
	"github.com/Alice-Cartelet/SimilarWords/internal/synonym"
	"github.com/Alice-Cartelet/SimilarWords/internal/translator"
	"github.com/Alice-Cartelet/SimilarWords/internal/translator/wordsapi"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// loadStore loads the configured corpus. A missing or unreadable corpus
// degrades to an empty dictionary so commands still run, they just find
// nothing.
func loadStore(cfg *config.Config) *dictionary.Store {
	store := dictionary.NewStore()
	if err := store.LoadFile(cfg.Corpus.Path); err != nil {
		slog.Default().Warn("could not load the corpus, continuing with an empty dictionary",
			slog.String("path", cfg.Corpus.Path),
			slog.Any("error", err),
		)
	}
	return store
}

// newResolver builds a synonym resolver, wiring in the external
// translation client unless it is disabled or unconfigured. The
// returned function releases the client.
func newResolver(cfg *config.Config, store *dictionary.Store, noTranslate bool) (*synonym.Resolver, func()) {
	rapidAPI := cfg.Translator.RapidAPI
	if noTranslate || !rapidAPI.Enabled() {
		return synonym.NewResolver(store, nil), func() {}
	}

	client := wordsapi.NewClient(rapidAPI.CacheDirectory, wordsapi.Config{
		Host: rapidAPI.Host,
		Key:  rapidAPI.Key,
	}, translator.DefaultMaxRetryAttempts)
	return synonym.NewResolver(store, client), func() {
		_ = client.Close()
	}
}
