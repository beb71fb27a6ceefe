// Package fetch wraps outbound GET requests with the response-reuse and
// retry policy shared by the provider clients: successful bodies are cached
// for an hour, transient failures are retried with increasing backoff.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	cacheTTL    = time.Hour
	maxRetries  = 5
	backoffBase = 200 * time.Millisecond
)

// Cache is the body store consulted before the network. A nil Cache on the
// client disables reuse without changing fetch behavior.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

type Client struct {
	httpClient *http.Client
	cache      Cache
	userAgent  string
}

func NewClient(timeout time.Duration, cache Cache, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		userAgent:  userAgent,
	}
}

// Get fetches url, retrying transport errors and 5xx responses. A 4xx
// response is terminal and returned as an error without retry.
func (c *Client) Get(url string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(url); ok {
			return body, nil
		}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoffBase << (attempt - 1))
		}

		body, retryable, err := c.do(url)
		if err == nil {
			if c.cache != nil {
				c.cache.Set(url, body, cacheTTL)
			}
			return body, nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) do(url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("server error (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, false, fmt.Errorf("request rejected (status %d)", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	return body, false, nil
}
