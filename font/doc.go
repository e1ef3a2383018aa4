// Package font builds Unicode decoders for the PDF font flavours.
//
// A font dictionary yields a [Decoder] that partitions raw byte
// strings into character codes and maps each code to its Unicode text
// and advance width:
//
//	dec, err := font.Make(fontDict, resolve)
//	for _, code := range dec.Decode(raw) {
//	    // code.Text, code.Width, code.IsSpace
//	}
//
// # Font Flavours
//
//   - [SimpleFont] - Type1 (including the Standard 14), MMType1 and
//     TrueType fonts with single-byte codes
//   - [Type3Font] - user-defined fonts with their own FontMatrix
//   - [CIDFont] - Type0 composite fonts whose CMap partitions input
//     into variable-length codes
//
// # Unicode Resolution
//
// The mapping from codes to text follows a fixed priority: an attached
// ToUnicode CMap wins when present; otherwise the font's encoding
// (base encoding plus Differences, glyph names resolved through the
// Adobe Glyph List) applies; codes with no mapping at all decode to
// U+FFFD and flag the font through its diagnostics.
package font
