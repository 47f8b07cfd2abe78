package sources

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadEntries reads symbols line by line until the first blank line or EOF.
// Lines with commas hold several symbols.
func ReadEntries(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read entries")
	}

	return SplitEntries(lines), nil
}

// SplitEntries splits comma separated lines, trims entries and removes
// case-insensitive duplicates keeping the first spelling.
func SplitEntries(lines []string) []string {
	seen := make(map[string]struct{})
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, part := range strings.Split(line, ",") {
			entry := strings.TrimSpace(part)
			if entry == "" {
				continue
			}
			key := strings.ToUpper(entry)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			entries = append(entries, entry)
		}
	}
	return entries
}
