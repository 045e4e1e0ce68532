// Package config provides configuration management for artist-credits.
//
// This package handles:
//   - Loading and saving settings from JSON, TOML or YAML files
//   - Default configuration values
//   - Conversion to parser options, frame lists and report formats
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads TPE1 and TPE2 from .mp3 files, recursively
//	// Parses up to 8 files concurrently
//	// Prints reports as trees
//
// # Loading from File
//
// The decoder is chosen by file extension: .toml, .yaml/.yml, anything else
// is read as JSON.
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.Frames = []string{"TPE1", "TCOM"}
//	err := settings.Save("/path/to/config.json")
package config
