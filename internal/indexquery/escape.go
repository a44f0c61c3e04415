package indexquery

import "strings"

// reservedChars are the index engine's Lucene-like special characters.
// Each is backslash-escaped when it appears literally inside a value.
const reservedChars = `+-&|!(){}[]^"~*?:\`

func escapeValue(raw string) string {
	var b strings.Builder
	hasSpace := false
	for _, r := range raw {
		if strings.ContainsRune(reservedChars, r) {
			b.WriteByte('\\')
		}
		if r == ' ' {
			hasSpace = true
		}
		b.WriteRune(r)
	}
	escaped := b.String()
	if hasSpace {
		return `"` + escaped + `"`
	}
	return escaped
}

// renderInList splits an IN leaf's raw value on top-level commas,
// stripping any surrounding double quotes from each token, and renders
// the tokens as a space-separated index term list: "v.attr: (a b c)".
// Bare and double-quoted tokens are both accepted; quoting is only
// significant for tokens that themselves contain a comma or whitespace.
func renderInList(raw string) string {
	tokens := splitTopLevelCommas(raw)
	rendered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
			tok = tok[1 : len(tok)-1]
		}
		if tok == "" {
			continue
		}
		rendered = append(rendered, escapeValue(tok))
	}
	return strings.Join(rendered, " ")
}

func splitTopLevelCommas(raw string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range raw {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			tokens = append(tokens, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	tokens = append(tokens, cur.String())
	return tokens
}
