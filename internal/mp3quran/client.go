// Package mp3quran is a typed client for the mp3quran.net v3 API.
package mp3quran

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"qurangen/internal/config"
	"qurangen/internal/fetch"
)

// Contract errors. A response missing its expected top-level key means
// the API shape changed; callers treat this as fatal.
var (
	ErrMissingKey    = errors.New("response missing expected key")
	ErrUnexpectedDoc = errors.New("response is not a JSON object")
)

// Fetcher abstracts the HTTP layer so tests can inject failures.
type Fetcher interface {
	Get(url string) ([]byte, error)
}

// Client fetches reciter and chapter metadata.
type Client struct {
	fetcher Fetcher
	api     *config.APIConfig
}

// NewClient creates a client for the given API endpoints.
func NewClient(fetcher *fetch.Fetcher, api *config.APIConfig) *Client {
	return NewClientWithFetcher(fetcher, api)
}

// NewClientWithFetcher creates a client with an injected fetcher.
func NewClientWithFetcher(fetcher Fetcher, api *config.APIConfig) *Client {
	return &Client{
		fetcher: fetcher,
		api:     api,
	}
}

// Reciters fetches the reciter list, decoded with numeric wire text
// preserved, in API order.
func (c *Client) Reciters() ([]map[string]any, error) {
	return c.fetchList(c.api.ReciterURL(), "reciters")
}

// Suwar fetches the chapter list, decoded with numeric wire text
// preserved, in API order.
func (c *Client) Suwar() ([]map[string]any, error) {
	return c.fetchList(c.api.SuwarURL(), "suwar")
}

func (c *Client) fetchList(url, key string) ([]map[string]any, error) {
	body, err := c.fetcher.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnexpectedDoc, key, err)
	}

	raw, ok := payload[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, expected array", ErrMissingKey, key, raw)
	}

	objects := make([]map[string]any, 0, len(items))

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, expected object", ErrUnexpectedDoc, key, i, item)
		}

		objects = append(objects, obj)
	}

	return objects, nil
}
