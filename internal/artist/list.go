package artist

import "strings"

// Artist is one credited name. Children holds the bracketed group that
// directly follows the name and is nil when there is none; a group that is
// present is never empty.
type Artist struct {
	Name     string
	Children ArtistList
}

// HasChildren reports whether the name was followed by a bracketed group.
func (a Artist) HasChildren() bool {
	return a.Children != nil
}

// ArtistList is an ordered group of sibling artists. The first entry is the
// primary credit.
type ArtistList []Artist

// Len returns the number of artists at this level.
func (l ArtistList) Len() int {
	return len(l)
}

// Names returns the names at this level in order.
func (l ArtistList) Names() []string {
	names := make([]string, len(l))
	for i, a := range l {
		names[i] = a.Name
	}
	return names
}

// Walk visits every artist depth-first in input order. depth is 0 for the
// top level. Walk stops early when fn returns false.
func (l ArtistList) Walk(fn func(depth int, a Artist) bool) {
	l.walk(0, fn)
}

func (l ArtistList) walk(depth int, fn func(int, Artist) bool) bool {
	for _, a := range l {
		if !fn(depth, a) {
			return false
		}
		if a.Children != nil && !a.Children.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// String encodes the list back into credit syntax with every name escaped.
// Parsing the result yields an equal list.
func (l ArtistList) String() string {
	var sb strings.Builder
	l.encode(&sb)
	return sb.String()
}

func (l ArtistList) encode(sb *strings.Builder) {
	for i, a := range l {
		if i > 0 {
			sb.WriteRune(comma)
		}
		sb.WriteString(Escape(a.Name))
		if a.Children != nil {
			sb.WriteRune(leftBracket)
			a.Children.encode(sb)
			sb.WriteRune(rightBracket)
		}
	}
}
