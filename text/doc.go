// Package text interprets page content streams and emits positioned
// glyphs.
//
// The [Interpreter] drives the graphics/text state machine over the
// operator stream of one page, decodes shown strings through the
// page's fonts, and produces one [Glyph] per Unicode fragment with its
// page-space origin, advance and font size. Non-text operators are
// consumed and ignored; form XObjects are interpreted recursively with
// cycle detection.
package text
