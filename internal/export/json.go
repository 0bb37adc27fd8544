package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsandberg/gt-scorecards/internal/scorecard"
)

// WriteJSON writes the full ordered sequence of scorecards as an indented
// JSON array, preserving the nested player and hole-label structure.
func WriteJSON(w io.Writer, cards []*scorecard.Scorecard) error {
	if cards == nil {
		cards = []*scorecard.Scorecard{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cards); err != nil {
		return fmt.Errorf("encoding scorecards: %w", err)
	}
	return nil
}

// WriteJSONFile writes the JSON export to path.
func WriteJSONFile(path string, cards []*scorecard.Scorecard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, cards); err != nil {
		return err
	}
	return f.Close()
}
