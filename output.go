package pdftext

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdftext/layout"
)

// BoundingBox locates a text span on its page, in PDF points with y
// growing upward: Top >= Bottom and Right >= Left.
type BoundingBox struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// String renders the box as "(top, right, bottom, left)".
func (b BoundingBox) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f, %.1f)", b.Top, b.Right, b.Bottom, b.Left)
}

// TextSpan is one run of text with consistent font size on a single
// baseline.
type TextSpan struct {
	Text     string
	BBox     BoundingBox
	FontSize float64
	Page     int // 1-based page number
}

// Line is an ordered sequence of spans sharing a baseline, left to
// right. An empty line marks a vertical gap or a page boundary.
type Line []TextSpan

// TextOutput is the result of an extraction: structured lines of
// positioned spans, convertible to plain or layout-preserving text.
type TextOutput struct {
	lines    []Line
	pages    []layout.PageGlyphs
	warnings []Warning
}

// Lines returns the ordered lines across all pages: page order first,
// then top to bottom.
func (o *TextOutput) Lines() []Line {
	return o.lines
}

// Warnings returns the non-fatal problems collected during
// extraction, order-preserved and de-duplicated.
func (o *TextOutput) Warnings() []Warning {
	return o.warnings
}

// String returns the plain text: span texts joined by single spaces
// within a line, lines joined by single newlines. Empty lines (page
// boundaries, large vertical gaps) contribute a blank row. There is no
// trailing newline.
func (o *TextOutput) String() string {
	var sb strings.Builder
	for i, line := range o.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, span := range line {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(span.Text)
		}
	}
	return sb.String()
}

// StringPretty returns a layout-preserving rendering on a character
// grid: glyphs land in cells sized by the document's median advance
// and line height, so columns and indentation survive.
func (o *TextOutput) StringPretty() string {
	return layout.RenderGrid(o.pages)
}
