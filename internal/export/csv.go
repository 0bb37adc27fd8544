package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tsandberg/gt-scorecards/internal/scorecard"
)

// WriteCSV writes one flattened row per scorecard. The header holds the
// fixed scalar columns followed by the union of hole columns across all
// rows, so 9-hole and 18-hole entries share one file; rows missing a column
// leave the cell blank.
func WriteCSV(w io.Writer, cards []*scorecard.Scorecard) error {
	rows := scorecard.Flatten(cards)
	columns := scorecard.ColumnOrder(rows)

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV export to path.
func WriteCSVFile(path string, cards []*scorecard.Scorecard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, cards); err != nil {
		return err
	}
	return f.Close()
}
