package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/pdftext/model"
	"github.com/tsawler/pdftext/text"
)

const pageTop = 792.0

// glyphAt builds a horizontal glyph for the tests.
func glyphAt(s string, x, y, width, size float64) text.Glyph {
	return text.Glyph{
		Text:    s,
		Origin:  model.Point{X: x, Y: y},
		Advance: model.Point{X: width},
		Size:    size,
	}
}

// word lays out a word one glyph per rune, advancing by width each
// time, and returns the glyphs.
func word(s string, x, y, width, size float64) []text.Glyph {
	var out []text.Glyph
	for i, r := range s {
		out = append(out, glyphAt(string(r), x+float64(i)*width, y, width, size))
	}
	return out
}

func lineTexts(lines []Line) [][]string {
	out := make([][]string, len(lines))
	for i, line := range lines {
		for _, span := range line.Spans {
			out[i] = append(out[i], span.Text)
		}
	}
	return out
}

func TestSingleLineSingleSpan(t *testing.T) {
	glyphs := word("Hello", 72, 700, 6, 12)
	lines := BuildLines(glyphs, pageTop)

	want := [][]string{{"Hello"}}
	if diff := cmp.Diff(want, lineTexts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestGapSplitsSpans(t *testing.T) {
	// "Alpha" and "Beta" on one baseline, separated by far more than
	// 0.3 of the font size.
	glyphs := append(word("Alpha", 72, 700, 6, 12), word("Beta", 300, 700, 6, 12)...)
	lines := BuildLines(glyphs, pageTop)

	want := [][]string{{"Alpha", "Beta"}}
	if diff := cmp.Diff(want, lineTexts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	// Spans within a line are ordered left to right.
	line := lines[0]
	if line.Spans[0].BBox.Left >= line.Spans[1].BBox.Left {
		t.Error("spans not ordered by left edge")
	}
}

func TestSmallGapKeepsSpan(t *testing.T) {
	// A gap of 0.2 em at 12pt (2.4pt) stays below the 0.3 threshold
	// (3.6pt), so both halves belong to one span.
	glyphs := append(word("ab", 72, 700, 6, 12), word("cd", 72+12+2.4, 700, 6, 12)...)
	lines := BuildLines(glyphs, pageTop)

	want := [][]string{{"abcd"}}
	if diff := cmp.Diff(want, lineTexts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFontSizeChangeSplitsSpans(t *testing.T) {
	glyphs := append(word("big", 72, 700, 8, 16), word("tiny", 96, 700, 4, 8)...)
	lines := BuildLines(glyphs, pageTop)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if len(lines[0].Spans) != 2 {
		t.Fatalf("got %d spans, want 2 (size change splits)", len(lines[0].Spans))
	}
	if lines[0].Spans[0].FontSize != 16 || lines[0].Spans[1].FontSize != 8 {
		t.Errorf("span sizes = %v, %v", lines[0].Spans[0].FontSize, lines[0].Spans[1].FontSize)
	}
}

func TestBaselineTolerance(t *testing.T) {
	// 3 points apart at 12pt: within half the font size, same line.
	glyphs := append(word("up", 72, 700, 6, 12), word("dn", 100, 697, 6, 12)...)
	lines := BuildLines(glyphs, pageTop)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (3pt within tolerance)", len(lines))
	}

	// 10 points apart: separate lines, top first.
	glyphs = append(word("up", 72, 700, 6, 12), word("dn", 72, 690, 6, 12)...)
	lines = BuildLines(glyphs, pageTop)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Spans[0].Text != "up" || lines[1].Spans[0].Text != "dn" {
		t.Errorf("line order: %v", lineTexts(lines))
	}
}

func TestWhitespaceGlyphsAbsorbed(t *testing.T) {
	glyphs := []text.Glyph{
		glyphAt("a", 72, 700, 6, 12),
		glyphAt(" ", 78, 700, 3, 12),
		glyphAt("b", 81, 700, 6, 12),
	}
	lines := BuildLines(glyphs, pageTop)

	want := [][]string{{"a b"}}
	if diff := cmp.Diff(want, lineTexts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLeadingTrailingWhitespaceTrimmed(t *testing.T) {
	glyphs := []text.Glyph{
		glyphAt(" ", 66, 700, 6, 12),
		glyphAt("x", 72, 700, 6, 12),
		glyphAt(" ", 78, 700, 6, 12),
	}
	lines := BuildLines(glyphs, pageTop)

	want := [][]string{{"x"}}
	if diff := cmp.Diff(want, lineTexts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWhitespaceOnlyLineDiscarded(t *testing.T) {
	glyphs := []text.Glyph{glyphAt(" ", 72, 700, 6, 12)}
	if lines := BuildLines(glyphs, pageTop); len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestBlankLineSynthesisedForLargeGap(t *testing.T) {
	glyphs := append(word("top", 72, 700, 6, 12), word("bottom", 72, 600, 6, 12)...)
	lines := BuildLines(glyphs, pageTop)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (blank separator in between)", len(lines))
	}
	if len(lines[1].Spans) != 0 {
		t.Error("middle line should be empty")
	}
}

func TestSpanBBox(t *testing.T) {
	glyphs := word("ab", 100, 500, 6, 12)
	lines := BuildLines(glyphs, pageTop)

	span := lines[0].Spans[0]
	bbox := span.BBox

	if bbox.Left != 100 {
		t.Errorf("Left = %v, want 100", bbox.Left)
	}
	if bbox.Right != 112 {
		t.Errorf("Right = %v, want 112", bbox.Right)
	}
	// Fallback metrics: ascent = size, descent = 0.2 size.
	if bbox.Top != 512 {
		t.Errorf("Top = %v, want 512", bbox.Top)
	}
	if bbox.Bottom != 500-2.4 {
		t.Errorf("Bottom = %v, want 497.6", bbox.Bottom)
	}

	if bbox.Left > bbox.Right || bbox.Bottom > bbox.Top {
		t.Error("bbox is not normalised")
	}
}

func TestSpanBBoxUsesFontMetrics(t *testing.T) {
	g := glyphAt("A", 100, 500, 6, 12)
	g.Ascent = 9
	g.Descent = -3
	lines := BuildLines([]text.Glyph{g}, pageTop)

	bbox := lines[0].Spans[0].BBox
	if bbox.Top != 509 || bbox.Bottom != 497 {
		t.Errorf("bbox = %+v, want top 509 bottom 497", bbox)
	}
}

func TestRotatedGlyphsGroupIntoTallLine(t *testing.T) {
	// Vertical advances: glyphs stacked along y as with 90-degree
	// rotated text. Baselines differ by 3pt per glyph, within the
	// 12pt-size tolerance, so they chain into one line.
	var glyphs []text.Glyph
	for i := 0; i < 5; i++ {
		glyphs = append(glyphs, text.Glyph{
			Text:    "l",
			Origin:  model.Point{X: 300, Y: 500 + float64(i)*3},
			Advance: model.Point{Y: 3},
			Size:    12,
		})
	}

	lines := BuildLines(glyphs, pageTop)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	bbox := lines[0].Spans[0].BBox
	if bbox.Height() <= bbox.Width() {
		t.Errorf("rotated text bbox %+v should be taller than wide", bbox)
	}
}

func TestMirroredTransformNormalised(t *testing.T) {
	// A negative advance (mirrored CTM) must still produce
	// left <= right.
	g := text.Glyph{
		Text:    "m",
		Origin:  model.Point{X: 100, Y: 500},
		Advance: model.Point{X: -8},
		Size:    12,
	}
	lines := BuildLines([]text.Glyph{g}, pageTop)

	bbox := lines[0].Spans[0].BBox
	if bbox.Left > bbox.Right {
		t.Errorf("bbox not normalised: %+v", bbox)
	}
	if bbox.Left != 92 || bbox.Right != 100 {
		t.Errorf("bbox = %+v, want left 92 right 100", bbox)
	}
}
