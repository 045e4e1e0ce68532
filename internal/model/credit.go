package model

import (
	"fmt"
	"strings"

	"github.com/handiism/artist-credits/internal/artist"
)

// FrameID is an ID3v2 text frame that may carry an artist credit.
type FrameID string

const (
	// FrameLeadArtist is TPE1, the lead performer.
	FrameLeadArtist FrameID = "TPE1"

	// FrameAlbumArtist is TPE2, the band or album artist.
	FrameAlbumArtist FrameID = "TPE2"

	// FrameConductor is TPE3.
	FrameConductor FrameID = "TPE3"

	// FrameComposer is TCOM.
	FrameComposer FrameID = "TCOM"

	// FrameLyricist is TEXT.
	FrameLyricist FrameID = "TEXT"
)

// KnownFrames lists every supported frame in display order.
var KnownFrames = []FrameID{
	FrameLeadArtist,
	FrameAlbumArtist,
	FrameConductor,
	FrameComposer,
	FrameLyricist,
}

// Description returns a human readable frame name.
func (f FrameID) Description() string {
	switch f {
	case FrameLeadArtist:
		return "Artist"
	case FrameAlbumArtist:
		return "Album Artist"
	case FrameConductor:
		return "Conductor"
	case FrameComposer:
		return "Composer"
	case FrameLyricist:
		return "Lyricist"
	default:
		return string(f)
	}
}

// ParseFrameID accepts a frame ID ("TPE1") or its description ("album artist"),
// case-insensitively.
func ParseFrameID(s string) (FrameID, error) {
	s = strings.TrimSpace(s)
	for _, f := range KnownFrames {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Description()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown artist frame %q", s)
}

// Credit is one raw credit string and the result of parsing it.
type Credit struct {
	Frame FrameID

	// Raw is the tag value as read, before any normalization.
	Raw string

	// Artists is the parsed tree. It is nil when Err is set or the credit
	// has not been parsed yet.
	Artists artist.ArtistList

	// Err is the parse error, if any.
	Err error

	// Complete is set when parsing consumed all of the text. Tokens left
	// after the top-level list, or a dangling escape marker, leave it unset
	// and Artists then describes only a prefix of Raw.
	Complete bool
}

// Parse parses text with p and stores the result. text is usually Raw, or
// Raw after Unicode normalization.
func (c *Credit) Parse(p *artist.Parser, text string) {
	ts := artist.Tokenize(text)
	c.Artists, c.Err = p.Build(ts)
	c.Complete = c.Err == nil && ts.Len() == 0 && !ts.DanglingEscape()
}

// Valid reports whether the credit was parsed successfully.
func (c *Credit) Valid() bool {
	return c.Err == nil && c.Artists != nil
}

// Canonical returns the escaped re-encoding of the parsed tree, or Raw when
// the credit is not valid.
func (c *Credit) Canonical() string {
	if !c.Valid() {
		return c.Raw
	}
	return c.Artists.String()
}

// Rewritable reports whether Canonical can replace Raw without losing text.
func (c *Credit) Rewritable() bool {
	return c.Valid() && c.Complete
}

// Changed reports whether a rewritable credit's canonical form differs from
// Raw. Credits with leftover text never count as changed.
func (c *Credit) Changed() bool {
	return c.Rewritable() && c.Canonical() != c.Raw
}
