package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tsandberg/gt-scorecards/internal/scorecard"
)

// profilePathMarker identifies the player-profile link on a scorecard page.
const profilePathMarker = "/profile/"

// ParseScorecard parses one entry page into a Scorecard. Parsing is
// best-effort: a page without a scorecard table (an error page, say) still
// yields a valid record with empty hole and score data, and missing sections
// leave the corresponding fields absent. The only error is unreadable HTML.
func ParseScorecard(r io.Reader, entryURL string) (*scorecard.Scorecard, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	card := scorecard.New(entryURL)
	card.Game = strings.TrimSpace(doc.Find("h1").First().Text())

	parseUsername(doc, card)
	parseTable(doc, card)
	parseVideo(doc, card)

	if len(card.Players) > 0 {
		card.TotalScore, card.ScoreVsPar, card.GSP = scorecard.Summarize(card.Players[0].Scores)
	}

	return card, nil
}

// parseUsername reads the label of the info-styled button nested in the
// first profile link. Username stays absent when either element is missing.
func parseUsername(doc *goquery.Document, card *scorecard.Scorecard) {
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if !strings.Contains(strings.ToLower(href), profilePathMarker) {
			return true
		}
		if label := strings.TrimSpace(link.Find(".btn-info").First().Text()); label != "" {
			card.Username = &label
		}
		return false
	})
}

// parseTable reads the scorecard table. Header cells become the hole labels;
// body rows are classified by their first cell's upper-cased text. Rows with
// an unrecognized label are ignored.
func parseTable(doc *goquery.Document, card *scorecard.Scorecard) {
	table := doc.Find("table.scorecard").First()
	if table.Length() == 0 {
		return
	}

	table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		card.HoleLabels = append(card.HoleLabels, strings.TrimSpace(th.Text()))
	})

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		rows = table.Find("tr")
	}
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})

		label := strings.ToUpper(texts[0])
		rest := texts[1:]
		switch {
		case label == "DISTANCE":
			card.Distances = rest
		case label == "PAR":
			card.Pars = rest
		case strings.HasPrefix(label, "PLAYER"):
			number := ""
			if fields := strings.Fields(texts[0]); len(fields) > 1 {
				number = fields[1]
			}
			card.Players = append(card.Players, scorecard.Player{
				PlayerNumber: number,
				Scores:       rest,
			})
		case label == "COURSE:":
			if len(rest) > 0 {
				card.Course = &rest[0]
			}
		case label == "DATE:":
			if len(rest) > 0 {
				card.Date = &rest[0]
			}
		case label == "CAPTURE ID:":
			if len(rest) > 0 {
				card.CaptureID = &rest[0]
			}
		}
	})
}

// parseVideo looks for a card panel whose header mentions "Video" and reads
// the embedded frame's source. An embed URL yields both the canonical watch
// URL and the original embed URL; any other source is kept as-is.
func parseVideo(doc *goquery.Document, card *scorecard.Scorecard) {
	const embedMarker = "/embed/"

	doc.Find("div.card").EachWithBreak(func(_ int, panel *goquery.Selection) bool {
		header := strings.TrimSpace(panel.Find(".card-header").First().Text())
		if !strings.Contains(header, "Video") {
			return true
		}

		src, ok := panel.Find("iframe").First().Attr("src")
		src = strings.TrimSpace(src)
		if !ok || src == "" {
			return false
		}

		if idx := strings.Index(src, embedMarker); idx >= 0 {
			id := src[idx+len(embedMarker):]
			if q := strings.Index(id, "?"); q >= 0 {
				id = id[:q]
			}
			watch := "https://www.youtube.com/watch?v=" + id
			card.YoutubeVideo = &watch
			card.YoutubeEmbed = &src
		} else {
			card.YoutubeVideo = &src
		}
		return false
	})
}
