// Package model defines the records shared by the scanning, tagging and
// reporting packages of artist-credits.
//
// # Track
//
// Track is one audio file with the artist credits read from its tags:
//
//	track := model.NewTrack("/music/Album/01.mp3", "Title", "Album")
//	track.AddCredit(model.FrameLeadArtist, "A（B）、C")
//
// # Credit
//
// Credit pairs one raw tag value with its parsed artist tree. A credit whose
// raw value failed to parse keeps the error instead of a tree:
//
//	credit.Parse(parser, credit.Raw)
//	if credit.Valid() && credit.Changed() {
//	    fmt.Println(credit.Canonical())
//	}
//
// # Frames
//
// FrameID names the ID3v2 text frames that carry artist credits: TPE1, TPE2,
// TPE3, TCOM and TEXT.
package model
