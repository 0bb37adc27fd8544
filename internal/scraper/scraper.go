package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tsandberg/gt-scorecards/internal/scorecard"
)

// Scraper coordinates fetching and parsing of leaderboard pages for one
// site origin.
type Scraper struct {
	fetcher *Fetcher
	baseURL string
}

// New creates a Scraper over the given fetcher. An empty baseURL selects the
// production site origin.
func New(fetcher *Fetcher, baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the site origin this scraper resolves relative links
// against.
func (s *Scraper) BaseURL() string {
	return s.baseURL
}

// ListingURL returns the user-specific high-score listing URL for a query id.
func (s *Scraper) ListingURL(queryID string) string {
	return fmt.Sprintf("%s/Highscore/UserSpecific?queryId=%s", s.baseURL, url.QueryEscape(queryID))
}

// FetchUserListing downloads a user's listing page and extracts the
// scorecard-detail links from it.
func (s *Scraper) FetchUserListing(ctx context.Context, queryID string) ([]scorecard.EntryReference, error) {
	body, err := s.fetcher.Fetch(ctx, s.ListingURL(queryID))
	if err != nil {
		return nil, fmt.Errorf("fetching listing for %s: %w", queryID, err)
	}
	return ExtractEntries(strings.NewReader(body), s.baseURL)
}

// FetchScorecard downloads and parses one entry page.
func (s *Scraper) FetchScorecard(ctx context.Context, ref scorecard.EntryReference) (*scorecard.Scorecard, error) {
	body, err := s.fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching scorecard %s: %w", ref.URL, err)
	}
	return ParseScorecard(strings.NewReader(body), ref.URL)
}
