// Package filters provides PDF stream decompression filters.
//
// PDF streams can be compressed with several algorithms; this package
// implements the decode side of the standard ones:
//
//   - FlateDecode (zlib/deflate), including TIFF and PNG predictors
//   - ASCIIHexDecode and ASCII85Decode
//   - RunLengthDecode
//   - CCITTFaxDecode (Group 3/4)
//
// Filters that are not implemented return an error wrapping
// [ErrUnsupported] so callers can skip the affected stream instead of
// failing the document.
//
// Decode parameters are passed as a [Params] map:
//
//	params := filters.Params{
//	    "Predictor": 12,
//	    "Columns":   100,
//	}
//	decoded, err := filters.FlateDecode(data, params)
package filters
