package scraper

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	require.NoError(t, err, "loading fixture %s", name)
	return string(data)
}

func TestExtractEntries(t *testing.T) {
	html := loadFixture(t, "sample_listing.html")

	entries, err := ExtractEntries(strings.NewReader(html), "https://leaderboards.itsgames.com")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "https://leaderboards.itsgames.com/Highscore/ScorecardDetails?captureId=998877", entries[0].URL)
	assert.Equal(t, "Golden Tee Unplugged 2016", entries[0].GameHint)

	// Already-absolute links are kept as-is.
	assert.Equal(t, "https://leaderboards.itsgames.com/Highscore/ScorecardDetails?captureId=776655", entries[1].URL)
	assert.Equal(t, "Golden Tee LIVE 2007", entries[1].GameHint)

	// Path matching is case-insensitive.
	assert.Equal(t, "https://leaderboards.itsgames.com/highscore/scorecarddetails?captureId=554433", entries[2].URL)
	assert.Equal(t, "Power Putt LIVE", entries[2].GameHint)
}

func TestExtractEntriesNoMatches(t *testing.T) {
	html := `<html><body><a href="/About">About</a><p>nothing here</p></body></html>`

	entries, err := ExtractEntries(strings.NewReader(html), "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractEntriesEmptyDocument(t *testing.T) {
	entries, err := ExtractEntries(strings.NewReader(""), "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractEntriesHintFallsBackToLinkText(t *testing.T) {
	// No enclosing row mentions a game family, so the link's own text is
	// used.
	html := `<html><body>
		<div><a href="/Highscore/ScorecardDetails?captureId=1">Golden Tee Unplugged 2011</a></div>
	</body></html>`

	entries, err := ExtractEntries(strings.NewReader(html), "https://example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com/Highscore/ScorecardDetails?captureId=1", entries[0].URL)
	assert.Equal(t, "Golden Tee Unplugged 2011", entries[0].GameHint)
}

func TestExtractEntriesDuplicatesPreserved(t *testing.T) {
	html := `<html><body><table><tr>
		<td>Power Putt LIVE</td>
		<td><a href="/Highscore/ScorecardDetails?captureId=7">one</a></td>
		<td><a href="/Highscore/ScorecardDetails?captureId=7">two</a></td>
	</tr></table></body></html>`

	entries, err := ExtractEntries(strings.NewReader(html), "https://example.com")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].URL, entries[1].URL)
	assert.Equal(t, "Power Putt LIVE", entries[0].GameHint)
}
