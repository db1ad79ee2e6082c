package clientinfo

import "strings"

// ParseList splits a comma-delimited header value into an ordered list of
// trimmed tokens. Order and duplicates are preserved, as are the empty
// tokens produced by adjacent delimiters; dropping them would hide malformed
// client input from the caller. An empty input yields nil.
func ParseList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tokens[i] = strings.TrimSpace(part)
	}
	return tokens
}
