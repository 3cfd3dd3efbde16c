package parse

import "strings"

// segmentLines splits raw OCR text into an ordered list of non-empty trimmed
// lines. This list is the shared substrate for all line-oriented stages.
func segmentLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
