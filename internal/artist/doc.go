// Package artist parses artist credit strings into a tree of artists.
//
// Credit strings come from release metadata where group members, aliases and
// real names are expressed with full-width brackets and ideographic commas:
//
//	AlbumGroup（Member1（RealName1）、Member2（RealName2））、AppendArtist
//
// Parsing happens in two stages:
//
//  1. Tokenize scans the input once and produces a Tokens queue of names and
//     structural tokens. It never fails.
//  2. Build consumes the queue by recursive descent and returns an ArtistList.
//
// Parse runs both stages with default options:
//
//	list, err := artist.Parse("Petit Rabbit's（ココア（佐倉綾音））、Append")
//	if err != nil {
//	    var perr *artist.ParseError
//	    errors.As(err, &perr) // perr.Offset points at the offending token
//	}
//	fmt.Println(list[0].Name)             // Petit Rabbit's
//	fmt.Println(list[0].Children[0].Name) // ココア
//
// # Grammar
//
//	ArtistList := ArtistName ( '（' ArtistList '）' )? ( '、' ArtistList )?
//
// # Escaping
//
// A backslash makes the next character literal. A doubled comma `、、` is one
// literal comma. Escape produces the canonical backslash form of a name.
package artist
