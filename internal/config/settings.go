package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/handiism/artist-credits/internal/artist"
	"github.com/handiism/artist-credits/internal/audio"
	ioutils "github.com/handiism/artist-credits/internal/io"
	"github.com/handiism/artist-credits/internal/model"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Scan settings
	Frames             []string `json:"frames" toml:"frames" yaml:"frames"`
	Extensions         []string `json:"extensions" toml:"extensions" yaml:"extensions"`
	Recursive          bool     `json:"recursive" toml:"recursive" yaml:"recursive"`
	MaxConcurrentFiles int      `json:"max_concurrent_files" toml:"max_concurrent_files" yaml:"max_concurrent_files"`
	NormalizeUnicode   bool     `json:"normalize_unicode" toml:"normalize_unicode" yaml:"normalize_unicode"`

	// Parser settings
	MaxDepth       int  `json:"max_depth" toml:"max_depth" yaml:"max_depth"`
	RejectTrailing bool `json:"reject_trailing" toml:"reject_trailing" yaml:"reject_trailing"`

	// Output settings
	ReportFormat string `json:"report_format" toml:"report_format" yaml:"report_format"` // tree, flat, json, yaml

	// Tag settings
	BackupBeforeWrite bool `json:"backup_before_write" toml:"backup_before_write" yaml:"backup_before_write"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Frames:             []string{string(model.FrameLeadArtist), string(model.FrameAlbumArtist)},
		Extensions:         []string{".mp3"},
		Recursive:          true,
		MaxConcurrentFiles: 8,
		NormalizeUnicode:   false,

		MaxDepth:       0, // unlimited
		RejectTrailing: false,

		ReportFormat: "tree",

		BackupBeforeWrite: true,
	}
}

// Load reads settings from a file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), settings)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, settings)
	default:
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to a file in the format implied by its extension,
// creating its directory if needed.
func (s *Settings) Save(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(s)
		data = buf.Bytes()
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(context.Background(), path, data)
}

// Validate checks that frame names and the report format are known.
func (s *Settings) Validate() error {
	if _, err := s.FrameIDs(); err != nil {
		return err
	}
	if _, err := audio.ParseReportFormat(s.ReportFormat); err != nil {
		return err
	}
	if s.MaxConcurrentFiles < 1 {
		return fmt.Errorf("max_concurrent_files must be at least 1, got %d", s.MaxConcurrentFiles)
	}
	return nil
}

// FrameIDs converts the configured frame names.
func (s *Settings) FrameIDs() ([]model.FrameID, error) {
	ids := make([]model.FrameID, 0, len(s.Frames))
	for _, name := range s.Frames {
		id, err := model.ParseFrameID(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParserOptions converts settings to artist.Options.
func (s *Settings) ParserOptions() artist.Options {
	return artist.Options{
		MaxDepth:       s.MaxDepth,
		RejectTrailing: s.RejectTrailing,
	}
}

// ToReportFormat converts settings to an audio.ReportFormat, falling back to
// the tree format.
func (s *Settings) ToReportFormat() audio.ReportFormat {
	f, err := audio.ParseReportFormat(s.ReportFormat)
	if err != nil {
		return audio.FormatTree
	}
	return f
}
