package artist

import (
	"strings"
	"unicode/utf8"
)

// Escape returns name with every structural character and backslash prefixed
// by a backslash, so that Tokenize(Escape(name)) yields a single name token
// equal to name.
func Escape(name string) string {
	if !strings.ContainsAny(name, `\（）、`) {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name) + 8)
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		switch r {
		case escapeMarker, leftBracket, rightBracket, comma:
			sb.WriteRune(escapeMarker)
		}
		sb.WriteString(name[i : i+size])
		i += size
	}
	return sb.String()
}
