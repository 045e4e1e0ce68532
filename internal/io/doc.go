// Package ioutils provides file system utilities for artist-credits.
//
// This package contains functions for:
//   - Audio file discovery
//   - File copying (backups before tags are rewritten)
//   - File writing
//   - Directory creation
//
// # File Discovery
//
//	// Find every .mp3 below /music
//	files, err := ioutils.FindAudioFiles(ctx, []string{"/music"}, []string{".mp3"}, true)
//
// # Backups
//
//	err := ioutils.CopyFile(ctx, "/music/01.mp3", "/music/01.mp3.bak")
package ioutils
