// Package importer turns pasted or uploaded text into validated batches of
// insert payloads. Parsing is per-line with partial success: a malformed row
// is reported and skipped, never persisted half-filled.
package importer

import "strings"

// ParsedQuote is one quote recovered from pasted text.
type ParsedQuote struct {
	Text   string
	Author string
}

// quoteSeparator splits quote text from its author. The LAST occurrence
// wins, so quote text and author names may themselves contain " - ".
const quoteSeparator = " - "

// ParseQuoteLines parses pasted quote text, one quote per line, in the form
// `"<text>" - <author>`. Lines without the separator, or with a trailing
// separator and no author after it, become quotes by "Unknown". Blank lines
// are skipped, not errors.
func ParseQuoteLines(input string) []ParsedQuote {
	var out []ParsedQuote
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		text, author := line, ""
		if idx := strings.LastIndex(line, quoteSeparator); idx >= 0 {
			text, author = line[:idx], line[idx+len(quoteSeparator):]
		} else if strings.HasSuffix(line, " -") {
			// trailing separator whose author was trimmed away with the
			// surrounding whitespace
			text = line[:len(line)-len(" -")]
		}
		if author = trimQuotes(author); author == "" {
			author = "Unknown"
		}
		out = append(out, ParsedQuote{Text: trimQuotes(text), Author: author})
	}
	return out
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
