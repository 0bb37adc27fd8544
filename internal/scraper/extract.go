package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tsandberg/gt-scorecards/internal/scorecard"
)

// entryPathMarker identifies scorecard-detail links on a listing page,
// matched case-insensitively against the href.
const entryPathMarker = "/highscore/scorecarddetails"

// gameMarkers are the game-family names looked for in listing-row text when
// deriving a game hint for an entry link.
var gameMarkers = []string{"golden tee", "power putt"}

// ExtractEntries scans a listing page for scorecard-detail links and returns
// them in document order. Relative hrefs are resolved against baseURL.
// Duplicate URLs are not collapsed here; consuming each reference once is
// the caller's concern. An empty or non-matching document yields an empty
// slice.
func ExtractEntries(r io.Reader, baseURL string) ([]scorecard.EntryReference, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	entries := make([]scorecard.EntryReference, 0)
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.Contains(strings.ToLower(href), entryPathMarker) {
			return
		}

		entryURL := href
		if !strings.HasPrefix(entryURL, "http://") && !strings.HasPrefix(entryURL, "https://") {
			if !strings.HasPrefix(entryURL, "/") {
				entryURL = "/" + entryURL
			}
			entryURL = baseURL + entryURL
		}

		entries = append(entries, scorecard.EntryReference{
			URL:      entryURL,
			GameHint: gameHint(link),
		})
	})

	return entries, nil
}

// gameHint derives a best-effort game name for an entry link: the first cell
// of the closest enclosing table row whose text mentions a game family, or
// the link's own text when no such cell exists. The hint is superseded by
// the name parsed from the scorecard page itself.
func gameHint(link *goquery.Selection) string {
	var hint string
	link.Closest("tr").Find("th,td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(cell.Text())
		if containsGameMarker(text) {
			hint = text
			return false
		}
		return true
	})
	if hint == "" {
		hint = strings.TrimSpace(link.Text())
	}
	return hint
}

func containsGameMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range gameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
