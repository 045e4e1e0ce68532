package artist

// Options configures a Parser.
type Options struct {
	// MaxDepth bounds bracket nesting when positive. Zero or a negative
	// value leaves nesting unlimited.
	MaxDepth int

	// RejectTrailing makes Build fail with ErrUnexpectedToken when tokens are
	// left over after the top-level list, as in "A）". By default they are
	// ignored.
	RejectTrailing bool
}

// Parser builds artist trees from token queues.
type Parser struct {
	opts Options
}

// NewParser creates a Parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

var defaultParser = NewParser(Options{})

// Parse tokenizes input and builds its artist tree with default options.
func Parse(input string) (ArtistList, error) {
	return defaultParser.Parse(input)
}

// Build consumes tokens and returns the artist tree with default options.
func Build(tokens *Tokens) (ArtistList, error) {
	return defaultParser.Build(tokens)
}

// Parse tokenizes input and builds its artist tree.
func (p *Parser) Parse(input string) (ArtistList, error) {
	return p.Build(Tokenize(input))
}

// Build consumes tokens from the front of the queue and returns the artist
// tree. No partial tree is returned on error.
func (p *Parser) Build(tokens *Tokens) (ArtistList, error) {
	list, err := p.parseList(tokens, 0)
	if err != nil {
		return nil, err
	}
	if p.opts.RejectTrailing {
		if tok, ok := tokens.Peek(); ok {
			return nil, tokenErr(ErrUnexpectedToken, tok)
		}
	}
	return list, nil
}

// parseList parses
//
//	ArtistList := ArtistName ( '（' ArtistList '）' )? ( '、' ArtistList )?
//
// The nested group is tried before the continuation. The continuation is
// iterated rather than recursed; the resulting list is the same. A token that
// ends the list is pushed back for the caller.
func (p *Parser) parseList(ts *Tokens, depth int) (ArtistList, error) {
	var list ArtistList
	for {
		name, ok := ts.PopFront()
		if !ok {
			return nil, endErr(ErrInsufficientTokens, ts)
		}
		if name.Kind != KindName {
			return nil, tokenErr(ErrExpectedArtistName, name)
		}
		current := Artist{Name: name.Text}

		pending, ok := ts.PopFront()
		if !ok {
			return append(list, current), nil
		}

		switch pending.Kind {
		case KindName, KindRightBracket:
			ts.PushFront(pending)
			return append(list, current), nil

		case KindLeftBracket:
			if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
				return nil, tokenErr(ErrTooDeep, pending)
			}
			children, err := p.parseList(ts, depth+1)
			if err != nil {
				return nil, err
			}
			closing, ok := ts.PopFront()
			if !ok {
				return nil, endErr(ErrExpectedRightBracket, ts)
			}
			if closing.Kind != KindRightBracket {
				return nil, tokenErr(ErrExpectedRightBracket, closing)
			}
			current.Children = children
			list = append(list, current)

			pending, ok = ts.PopFront()
			if !ok {
				return list, nil
			}

		default:
			list = append(list, current)
		}

		if pending.Kind != KindComma {
			ts.PushFront(pending)
			return list, nil
		}
	}
}
