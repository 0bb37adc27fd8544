package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the leaderboard site origin.
	DefaultBaseURL = "https://leaderboards.itsgames.com"

	UserAgent = "gt-scorecards/1.0 (github.com/tsandberg/gt-scorecards)"
	Timeout   = 30 * time.Second

	// DefaultRequestDelay spaces successive page fetches as a politeness
	// measure toward the leaderboard site.
	DefaultRequestDelay = 2 * time.Second

	DefaultMaxRetries = 3
)

// Fetcher downloads pages with a politeness rate limit and bounded retries.
// A fetch that still fails after the retry budget returns an error; callers
// treat that as a skip, never a fatal condition.
type Fetcher struct {
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries uint64
}

// NewFetcher creates a Fetcher that waits delay between requests and retries
// transient failures up to maxRetries times. A zero delay disables the rate
// limit.
func NewFetcher(timeout, delay time.Duration, maxRetries uint64) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(delay), 1),
		userAgent:  UserAgent,
		maxRetries: maxRetries,
	}
}

// Fetch downloads url and returns the page body. Network errors and 429/5xx
// responses are retried with exponential backoff; any other non-200 status
// fails immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body string

	operation := func() error {
		if err := f.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return body, nil
}
