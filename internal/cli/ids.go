package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// readIDsFile loads user query ids from a file, one id per line. Blank
// lines and lines starting with # are skipped.
func readIDsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ids file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ids file: %w", err)
	}
	return ids, nil
}

// resolveIDs combines the inline comma-separated id list with the ids file,
// in that order.
func resolveIDs(inline, path string) ([]string, error) {
	var ids []string
	for _, id := range strings.Split(inline, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if path != "" {
		fileIDs, err := readIDsFile(path)
		if err != nil {
			return nil, err
		}
		ids = append(ids, fileIDs...)
	}
	return ids, nil
}
