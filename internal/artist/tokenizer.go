package artist

import (
	"strings"
	"unicode/utf8"
)

type lexState int

const (
	stateNormal lexState = iota
	// stateEscapeNext takes the next character literally.
	stateEscapeNext
)

// Tokenize scans input and returns its tokens in input order.
//
// Tokenize never fails: unbalanced brackets and stray commas are emitted as
// tokens and rejected by Build.
func Tokenize(input string) *Tokens {
	lx := &lexer{input: input}
	lx.run()
	ts := NewTokens(lx.toks, len(input))
	ts.dangling = lx.state == stateEscapeNext
	return ts
}

type lexer struct {
	input string
	toks  []Token
	state lexState

	// start is the raw offset of the pending name.
	start int
	// owned holds the pending name once an escape has been resolved in it.
	owned *strings.Builder
}

func (lx *lexer) run() {
	for i := 0; i < len(lx.input); {
		r, size := utf8.DecodeRuneInString(lx.input[i:])
		next := i + size

		switch lx.state {
		case stateNormal:
			switch {
			case r == escapeMarker, r == comma && lx.commaAt(next):
				lx.materialize(i)
				lx.state = stateEscapeNext
			case r == leftBracket:
				lx.delimit(KindLeftBracket, i, next)
			case r == rightBracket:
				lx.delimit(KindRightBracket, i, next)
			case r == comma:
				lx.delimit(KindComma, i, next)
			default:
				if lx.owned != nil {
					lx.owned.WriteString(lx.input[i:next])
				}
			}
		case stateEscapeNext:
			lx.owned.WriteString(lx.input[i:next])
			lx.state = stateNormal
		}
		i = next
	}
	lx.flush(len(lx.input))
}

// commaAt reports whether the character at offset i is a comma.
func (lx *lexer) commaAt(i int) bool {
	r, _ := utf8.DecodeRuneInString(lx.input[i:])
	return r == comma
}

// materialize switches the pending name from a view of the input to an owned
// copy of everything seen so far, ending before the escape marker at i.
func (lx *lexer) materialize(i int) {
	if lx.owned != nil {
		return
	}
	lx.owned = &strings.Builder{}
	lx.owned.WriteString(lx.input[lx.start:i])
}

func (lx *lexer) delimit(kind Kind, i, next int) {
	lx.flush(i)
	lx.toks = append(lx.toks, Token{
		Kind:   kind,
		Text:   lx.input[i:next],
		Offset: i,
		End:    next,
	})
	lx.start = next
}

// flush emits the pending name ending at raw offset end, if it has any text.
// A name that resolves to nothing, such as a lone trailing `\`, yields no
// token, so `A、\` fails in Build with ErrInsufficientTokens rather than
// producing an empty artist.
func (lx *lexer) flush(end int) {
	tok := Token{Kind: KindName, Offset: lx.start, End: end}
	if lx.owned != nil {
		tok.Text = lx.owned.String()
		tok.Owned = true
		lx.owned = nil
	} else {
		tok.Text = lx.input[lx.start:end]
	}
	if tok.Text != "" {
		lx.toks = append(lx.toks, tok)
	}
	lx.start = end
}
