// Package audio provides tag access and report generation for artist credits.
//
// # ID3 Tags
//
// Use the Tagger to read credit frames from MP3 files and to write
// normalized credits back:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	track, err := tagger.ReadTrack("/music/01.mp3", []model.FrameID{model.FrameLeadArtist})
//	...
//	err = tagger.WriteCredits(track)
//
// The tagger reads:
//   - Title (TIT2) and Album (TALB) for display
//   - Any of TPE1, TPE2, TPE3, TCOM and TEXT as credits
//
// # Reports
//
// Render parsed credits in various formats:
//
//	creator := audio.NewReportCreator(audio.FormatTree)
//	out, err := creator.RenderList(list)
//	out, err = creator.CreateReport(tracks)
//
// Supported formats:
//   - Tree (indented, with branch guides)
//   - Flat (one "depth<TAB>name" line per artist)
//   - JSON
//   - YAML
package audio
