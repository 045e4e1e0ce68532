package model

import (
	"path/filepath"
)

// Track represents one audio file and the artist credits read from it.
type Track struct {
	// Path is the location of the audio file.
	Path string

	// Title is the TIT2 frame value, if any.
	Title string

	// Album is the TALB frame value, if any.
	Album string

	// Credits holds one entry per non-empty artist frame, in the order the
	// frames were requested.
	Credits []*Credit
}

// NewTrack creates a Track without credits.
func NewTrack(path, title, album string) *Track {
	return &Track{
		Path:  path,
		Title: title,
		Album: album,
	}
}

// AddCredit appends a credit for frame with the unparsed value raw.
func (t *Track) AddCredit(frame FrameID, raw string) *Credit {
	c := &Credit{Frame: frame, Raw: raw}
	t.Credits = append(t.Credits, c)
	return c
}

// Credit returns the credit read from frame, or nil.
func (t *Track) Credit(frame FrameID) *Credit {
	for _, c := range t.Credits {
		if c.Frame == frame {
			return c
		}
	}
	return nil
}

// DisplayName returns the title, falling back to the file name.
func (t *Track) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// Invalid returns the credits that failed to parse.
func (t *Track) Invalid() []*Credit {
	var out []*Credit
	for _, c := range t.Credits {
		if c.Err != nil {
			out = append(out, c)
		}
	}
	return out
}

// Changed returns the valid credits whose canonical form differs from the
// raw tag value.
func (t *Track) Changed() []*Credit {
	var out []*Credit
	for _, c := range t.Credits {
		if c.Changed() {
			out = append(out, c)
		}
	}
	return out
}
