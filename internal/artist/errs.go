package artist

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientTokens   = errors.New("insufficient tokens")
	ErrExpectedArtistName   = errors.New("expected artist name")
	ErrExpectedRightBracket = errors.New("expected right bracket")
	ErrTooDeep              = errors.New("brackets nested too deep")
	ErrUnexpectedToken      = errors.New("unexpected trailing token")
)

// ParseError reports where Build stopped. Err is one of the sentinel errors
// above and is matched with errors.Is.
type ParseError struct {
	Err error
	// Offset is the byte offset of Token in the input, or the input length
	// when the token stream ended early.
	Offset int
	// Token is nil at end of stream.
	Token *Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%v at end of input (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d, found %s %q", e.Err, e.Offset, e.Token.Kind, e.Token.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func tokenErr(err error, tok Token) error {
	return &ParseError{Err: err, Offset: tok.Offset, Token: &tok}
}

func endErr(err error, ts *Tokens) error {
	return &ParseError{Err: err, Offset: ts.EndOffset()}
}
