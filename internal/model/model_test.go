package model

import (
	"errors"
	"testing"

	"github.com/handiism/artist-credits/internal/artist"
)

func TestParseFrameID(t *testing.T) {
	tests := []struct {
		input   string
		want    FrameID
		wantErr bool
	}{
		{"TPE1", FrameLeadArtist, false},
		{"tpe2", FrameAlbumArtist, false},
		{"Album Artist", FrameAlbumArtist, false},
		{" composer ", FrameComposer, false},
		{"TEXT", FrameLyricist, false},
		{"TIT2", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrameID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrameID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFrameID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCredit_Canonical(t *testing.T) {
	p := artist.NewParser(artist.Options{})

	tests := []struct {
		name        string
		raw         string
		wantValid   bool
		wantChanged bool
		canonical   string
	}{
		{"already canonical", "A（B）、C", true, false, "A（B）、C"},
		{"doubled comma becomes backslash", "A、、B", true, true, `A\、B`},
		{"needless escape dropped", `\A`, true, true, "A"},
		{"invalid keeps raw", "A（B", false, false, "A（B"},
		{"trailing tokens are not rewritten", "A（B）C、D", true, false, "A（B）"},
		{"trailing bracket is not rewritten", "A）", true, false, "A"},
		{"dangling escape is not rewritten", `A、、B\`, true, false, `A\、B`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Credit{Frame: FrameLeadArtist, Raw: tt.raw}
			c.Parse(p, c.Raw)

			if c.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v (err %v)", c.Valid(), tt.wantValid, c.Err)
			}
			if c.Changed() != tt.wantChanged {
				t.Errorf("Changed() = %v, want %v", c.Changed(), tt.wantChanged)
			}
			if got := c.Canonical(); got != tt.canonical {
				t.Errorf("Canonical() = %q, want %q", got, tt.canonical)
			}
		})
	}
}

func TestTrack_Credits(t *testing.T) {
	p := artist.NewParser(artist.Options{})
	track := NewTrack("/music/Album/01 Song.mp3", "", "Album")

	lead := track.AddCredit(FrameLeadArtist, "A、、B")
	lead.Parse(p, lead.Raw)
	album := track.AddCredit(FrameAlbumArtist, "（broken")
	album.Parse(p, album.Raw)

	if track.DisplayName() != "01 Song.mp3" {
		t.Errorf("DisplayName() = %q, want file name", track.DisplayName())
	}
	if got := track.Credit(FrameAlbumArtist); got != album {
		t.Errorf("Credit(TPE2) = %v, want %v", got, album)
	}
	if track.Credit(FrameComposer) != nil {
		t.Error("Credit(TCOM) should be nil")
	}

	invalid := track.Invalid()
	if len(invalid) != 1 || invalid[0] != album {
		t.Fatalf("Invalid() = %v, want [TPE2]", invalid)
	}
	if !errors.Is(album.Err, artist.ErrExpectedArtistName) {
		t.Errorf("TPE2 error = %v, want %v", album.Err, artist.ErrExpectedArtistName)
	}

	changed := track.Changed()
	if len(changed) != 1 || changed[0] != lead {
		t.Errorf("Changed() = %v, want [TPE1]", changed)
	}
}
