package analysis

import (
	"regexp"
	"strings"
)

// blank-line boundary: one or more empty (or whitespace-only) lines
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// SplitChunks splits raw text on blank-line boundaries into candidate
// clauses, discarding chunks whose trimmed length is at most minLen.
// Chunks keep their original text; only the length check trims.
func SplitChunks(text string, minLen int) []string {
	parts := paragraphBreak.Split(text, -1)

	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(strings.TrimSpace(part)) > minLen {
			chunks = append(chunks, part)
		}
	}
	return chunks
}
