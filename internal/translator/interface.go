package translator

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/translator/mock_client.go -package=mock_translator

// Client interface defines the methods for external word translation lookups
type Client interface {
	// Translate returns the external meaning of a word. An empty string with
	// a nil error means the provider has no entry for the word.
	Translate(ctx context.Context, word string) (string, error)
}

const (
	DefaultMaxRetryAttempts = 3
)
