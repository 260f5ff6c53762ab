// Package fetch performs HTTP GETs against the mp3quran API with
// config-driven retry logic.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"qurangen/internal/config"
	"qurangen/internal/logger"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// maxResponseBytes caps response reads. The full reciters payload is
// well under 1 MB.
const maxResponseBytes = 8 << 20

// Fetcher performs GET requests with a bounded timeout and exponential
// backoff retries. Only connection-level failures and statuses listed in
// the retry policy are retried; everything else fails immediately.
type Fetcher struct {
	client *http.Client
	policy *config.RetryPolicy
	log    *logger.Logger
}

// NewFetcher creates a fetcher with the default retry policy.
func NewFetcher(log *logger.Logger) *Fetcher {
	policy := config.Default().Generator.Retry

	return NewFetcherWithPolicy(&policy, log)
}

// NewFetcherWithPolicy creates a fetcher with a custom retry policy.
func NewFetcherWithPolicy(policy *config.RetryPolicy, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: policy.GetTimeout(),
		},
		policy: policy,
		log:    log,
	}
}

// Get fetches the URL and returns the response body.
// On failure it logs a single diagnostic line with the underlying cause
// and returns the error; it never panics past this boundary.
func (f *Fetcher) Get(url string) ([]byte, error) {
	body, _, _, err := f.GetWithMetrics(url)

	return body, err
}

// GetWithMetrics returns (body, attempts, totalDuration, error).
func (f *Fetcher) GetWithMetrics(url string) ([]byte, int, time.Duration, error) {
	var body []byte

	attempts := 0
	startTime := time.Now()

	operation := func() error {
		attempts++

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		req.Header.Set("User-Agent", "qurangen/1.0")
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			// Connection-level failure, always retriable
			return fmt.Errorf("request failed (attempt %d): %w", attempts, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
			if !f.policy.IsRetryableStatus(resp.StatusCode) {
				return backoff.Permanent(statusErr)
			}

			return statusErr
		}

		reader := io.LimitReader(resp.Body, maxResponseBytes)

		body, err = io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		return nil
	}

	if err := backoff.Retry(operation, f.policy.NewBackOff()); err != nil {
		totalDuration := time.Since(startTime)
		f.log.Error("fetch failed", "url", url, "attempts", attempts, "error", err)

		return nil, attempts, totalDuration, err
	}

	return body, attempts, time.Since(startTime), nil
}
