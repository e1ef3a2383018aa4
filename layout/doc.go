// Package layout reconstructs human-readable line structure from
// positioned glyphs.
//
// [BuildLines] groups one page's glyph stream into lines of spans:
// glyphs share a line when their baselines agree within half the
// smaller font size, and a line splits into spans at horizontal gaps
// beyond 30% of the font size or at font size changes beyond 5%.
// [RenderGrid] rasterises glyphs onto a character grid for the
// layout-preserving text rendering.
package layout
