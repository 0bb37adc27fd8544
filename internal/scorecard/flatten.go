package scorecard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Row is one flattened scorecard keyed by export column name.
type Row map[string]string

// baseColumns is the fixed leading column order of the tabular export.
// Hole columns follow, sorted ascending.
var baseColumns = []string{
	"query_user_id",
	"scraped_at",
	"entry_url",
	"game",
	"username",
	"course",
	"date",
	"capture_id",
	"total_score",
	"score_vs_par",
	"gsp",
	"youtube_video",
	"youtube_embed",
}

// Flatten maps each scorecard to exactly one flat row. Scalar fields are
// copied verbatim; per-hole columns are synthesized from player 1's score
// row aligned against the hole labels.
func Flatten(cards []*Scorecard) []Row {
	rows := make([]Row, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, flattenOne(card))
	}
	return rows
}

func flattenOne(card *Scorecard) Row {
	row := Row{
		"query_user_id": card.QueryUserID,
		"entry_url":     card.EntryURL,
		"game":          card.Game,
	}
	if !card.ScrapedAt.IsZero() {
		row["scraped_at"] = card.ScrapedAt.UTC().Format(time.RFC3339)
	}

	setOptional(row, "username", card.Username)
	setOptional(row, "course", card.Course)
	setOptional(row, "date", card.Date)
	setOptional(row, "capture_id", card.CaptureID)
	setOptional(row, "total_score", card.TotalScore)
	setOptional(row, "score_vs_par", card.ScoreVsPar)
	setOptional(row, "gsp", card.GSP)
	setOptional(row, "youtube_video", card.YoutubeVideo)
	setOptional(row, "youtube_embed", card.YoutubeEmbed)

	if len(card.Players) > 0 {
		for col, val := range holeColumns(card.HoleLabels, card.Players[0].Scores) {
			row[col] = val
		}
	}
	return row
}

func setOptional(row Row, col string, val *string) {
	if val != nil {
		row[col] = *val
	}
}

// holeColumns walks labels[1:] and scores in lockstep (labels[0] is the
// row-name column). A label made only of digits emits a hole_<n> column
// where n counts digit labels seen so far; the counter, not the label's own
// value, names the column so that numbering stays stable across 9- and
// 18-hole entries. Non-digit labels such as OUT, IN, and TOT consume their
// score but emit nothing. Trailing scores beyond the header's extent are
// dropped.
func holeColumns(labels, scores []string) map[string]string {
	cols := make(map[string]string)
	holeNum := 0
	for i := 1; i < len(labels); i++ {
		j := i - 1
		if j >= len(scores) {
			break
		}
		if !isDigits(labels[i]) {
			continue
		}
		holeNum++
		cols[fmt.Sprintf("hole_%d", holeNum)] = scores[j]
	}
	return cols
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ColumnOrder returns the export header for a batch of flattened rows: the
// fixed scalar columns followed by the union of hole columns across all rows
// in ascending hole order. Rows missing a hole column leave it blank, so
// 9-hole and 18-hole entries can share one export.
func ColumnOrder(rows []Row) []string {
	seen := make(map[int]bool)
	for _, row := range rows {
		for col := range row {
			rest, ok := strings.CutPrefix(col, "hole_")
			if !ok {
				continue
			}
			if n, err := strconv.Atoi(rest); err == nil {
				seen[n] = true
			}
		}
	}

	nums := make([]int, 0, len(seen))
	for n := range seen {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	cols := make([]string, 0, len(baseColumns)+len(nums))
	cols = append(cols, baseColumns...)
	for _, n := range nums {
		cols = append(cols, fmt.Sprintf("hole_%d", n))
	}
	return cols
}
