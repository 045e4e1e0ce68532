package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/handiism/artist-credits/internal/model"
)

// TagConfig holds tagging configuration.
type TagConfig struct {
	// ModifyTags is a master switch. If false, WriteCredits leaves files
	// untouched.
	ModifyTags bool

	// SkipEmpty drops frames whose value is empty instead of recording an
	// empty credit.
	SkipEmpty bool
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		SkipEmpty:  true,
	}
}

// Tagger reads and writes artist credit frames in MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	track, err := tagger.ReadTrack(path, model.KnownFrames)
//	if err != nil {
//	    log.Printf("Failed to read %s: %v", path, err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// ReadTrack opens path and returns a Track with one unparsed credit per
// requested frame. A file without an ID3 tag yields a Track with no credits.
func (t *Tagger) ReadTrack(path string, frames []model.FrameID) (*model.Track, error) {
	ids := make([]string, 0, len(frames)+2)
	ids = append(ids, "TIT2", "TALB")
	for _, f := range frames {
		ids = append(ids, string(f))
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: ids})
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	defer tag.Close()

	track := model.NewTrack(path, tag.Title(), tag.Album())
	for _, f := range frames {
		raw := tag.GetTextFrame(string(f)).Text
		if raw == "" && t.config.SkipEmpty {
			continue
		}
		track.AddCredit(f, raw)
	}

	return track, nil
}

// WriteCredits writes the canonical form of every changed credit back to its
// frame. Other frames are preserved. It returns the number of frames written.
func (t *Tagger) WriteCredits(track *model.Track) (int, error) {
	changed := track.Changed()
	if !t.config.ModifyTags || len(changed) == 0 {
		return 0, nil
	}

	tag, err := id3v2.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		return 0, fmt.Errorf("failed to open tags: %w", err)
	}
	defer tag.Close()

	if tag.Version() < 4 {
		// UTF-8 text frames need ID3v2.4.
		tag.SetVersion(4)
	}
	for _, c := range changed {
		tag.DeleteFrames(string(c.Frame))
		tag.AddTextFrame(string(c.Frame), id3v2.EncodingUTF8, c.Canonical())
	}

	if err := tag.Save(); err != nil {
		return 0, fmt.Errorf("failed to save tags: %w", err)
	}
	return len(changed), nil
}
