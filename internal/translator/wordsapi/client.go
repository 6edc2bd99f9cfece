// https://rapidapi.com/dpventures/api/wordsapi
package wordsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// Config holds the WordsAPI connection settings.
type Config struct {
	Host string
	Key  string
}

// Client looks words up on WordsAPI. Responses are cached on disk so a word
// is fetched over the network at most once.
type Client struct {
	httpClient       *resty.Client
	cache            *FileCache
	maxRetryAttempts uint
}

func NewClient(cacheDirectory string, config Config, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://" + config.Host)
	client.SetHeader("x-rapidapi-host", config.Host)
	client.SetHeader("x-rapidapi-key", config.Key)

	return &Client{
		httpClient:       client,
		cache:            NewFileCache(cacheDirectory),
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Response is the WordsAPI definitions payload.
type Response struct {
	Word        string       `json:"word"`
	Definitions []Definition `json:"definitions"`
}

type Definition struct {
	Definition   string `json:"definition"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Translate implements the translator.Client interface. The first definition
// the provider returns becomes the external meaning; a word the provider
// does not know yields an empty meaning without an error.
func (client *Client) Translate(ctx context.Context, word string) (string, error) {
	var result Response
	if err := retry.Do(
		func() error {
			response, err := client.lookup(ctx, word)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}

	if len(result.Definitions) == 0 {
		return "", nil
	}
	return result.Definitions[0].Definition, nil
}

func (client *Client) lookup(ctx context.Context, word string) (Response, error) {
	contents, err := client.cache.cache(word, func() ([]byte, error) {
		return client.fetch(ctx, word)
	})
	if err != nil {
		return Response{}, fmt.Errorf("cache.cache > %w", err)
	}

	var decoded Response
	if err := json.Unmarshal(contents, &decoded); err != nil {
		return Response{}, fmt.Errorf("json.Unmarshal(%s) > %w", string(contents), err)
	}
	return decoded, nil
}

func (client *Client) fetch(ctx context.Context, word string) ([]byte, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&Response{}).
		Get("/words/" + url.PathEscape(word) + "/definitions")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		// Unknown words are a valid outcome and worth caching too.
		return json.Marshal(Response{Word: word})
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*Response)
	if responseBody == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}
	contents, err := json.Marshal(responseBody)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal > %w", err)
	}
	return contents, nil
}
