// Package scraper provides HTTP fetching and HTML parsing for Golden Tee
// leaderboard pages.
//
// The scraper package downloads a user's high-score listing page, extracts
// the scorecard-detail links from it, and parses each entry page's
// semi-structured table into a normalized scorecard record. Fetching is rate
// limited and retried with exponential backoff; parsing is best-effort and
// never fails a run over a malformed page, since the site's markup varies
// between game variants and years.
package scraper
