package artist

import "fmt"

// Kind is the type of a lexical token.
type Kind int

const (
	KindName Kind = iota
	KindLeftBracket
	KindRightBracket
	KindComma
)

// Structural characters.
const (
	escapeMarker = '\\'
	leftBracket  = '（'
	rightBracket = '）'
	comma        = '、'
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "Name"
	case KindLeftBracket:
		return "LeftBracket"
	case KindRightBracket:
		return "RightBracket"
	case KindComma:
		return "Comma"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexical unit of a credit string.
//
// Text is the resolved text of the token. For structural tokens it is the
// single delimiter character. For names it is a substring of the input unless
// escape resolution forced a copy, in which case Owned is true.
type Token struct {
	Kind Kind
	Text string

	// Offset and End delimit the raw span in the input, in bytes,
	// escape markers included.
	Offset int
	End    int

	Owned bool
}

func (t Token) String() string {
	if t.Kind == KindName {
		return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Offset)
	}
	return fmt.Sprintf("%s@%d", t.Kind, t.Offset)
}

// Tokens is the token queue consumed by Build. Tokens are popped from the
// front and a popped token may be pushed back.
type Tokens struct {
	items []Token
	head  int
	end   int

	dangling bool
}

// NewTokens returns a queue over toks. end is the length of the input the
// tokens were produced from and is reported as the offset of errors found at
// end of stream.
func NewTokens(toks []Token, end int) *Tokens {
	return &Tokens{items: toks, end: end}
}

// Len returns the number of tokens not yet consumed.
func (ts *Tokens) Len() int {
	return len(ts.items) - ts.head
}

// PopFront removes and returns the first token.
func (ts *Tokens) PopFront() (Token, bool) {
	if ts.head >= len(ts.items) {
		return Token{}, false
	}
	tok := ts.items[ts.head]
	ts.head++
	return tok, true
}

// PushFront returns tok to the front of the queue.
func (ts *Tokens) PushFront(tok Token) {
	if ts.head > 0 {
		ts.head--
		ts.items[ts.head] = tok
		return
	}
	ts.items = append([]Token{tok}, ts.items...)
}

// Peek returns the first token without consuming it.
func (ts *Tokens) Peek() (Token, bool) {
	if ts.head >= len(ts.items) {
		return Token{}, false
	}
	return ts.items[ts.head], true
}

// Remaining returns the tokens not yet consumed.
func (ts *Tokens) Remaining() []Token {
	return ts.items[ts.head:]
}

// EndOffset returns the byte length of the tokenized input.
func (ts *Tokens) EndOffset() int {
	return ts.end
}

// DanglingEscape reports whether the input ended with an escape marker that
// had nothing left to escape. The marker contributes no text to any token.
func (ts *Tokens) DanglingEscape() bool {
	return ts.dangling
}
