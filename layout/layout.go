package layout

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/pdftext/model"
	"github.com/tsawler/pdftext/text"
)

// Span is a maximal run of glyphs on one baseline with consistent font
// size and no gap exceeding the space threshold.
type Span struct {
	Text     string
	BBox     model.BBox
	FontSize float64
	Page     int
}

// Line is an ordered sequence of spans sharing a baseline bucket,
// left to right. An empty line (no spans) renders as a blank row and
// marks large vertical gaps and page boundaries.
type Line struct {
	Spans []Span
	Page  int
	Y     float64 // Baseline position, top-down page coordinates
}

// Tunables of the reconstruction heuristics.
const (
	// spaceThresholdRatio is the horizontal gap, as a fraction of the
	// font size, beyond which two glyphs no longer share a span.
	spaceThresholdRatio = 0.3

	// sizeChangeRatio is the relative font size change that splits a
	// span.
	sizeChangeRatio = 0.05

	// baselineQuantum quantises baselines for the initial bucket
	// sort.
	baselineQuantum = 1.0

	// blankLineGap is the vertical gap, in points, beyond which an
	// empty separator line is synthesised between two lines.
	blankLineGap = 24.0

	// descentRatio approximates the descender extent when the font
	// provides no metrics.
	descentRatio = 0.2
)

// BuildLines groups one page's glyphs into lines of spans. pageTop is
// the top edge of the page (MediaBox ury), used to flip into a
// top-down frame for ordering; the returned bounding boxes stay in
// native PDF point space (y up).
func BuildLines(glyphs []text.Glyph, pageTop float64) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	// Sort by quantised baseline (top-down), then x. The quantised
	// key makes the sort deterministic; the exact tolerance is
	// applied while merging below.
	sorted := make([]text.Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi := quantize(pageTop - sorted[i].Origin.Y)
		yj := quantize(pageTop - sorted[j].Origin.Y)
		if yi != yj {
			return yi < yj
		}
		return sorted[i].Origin.X < sorted[j].Origin.X
	})

	// Merge adjacent baseline buckets within the size-relative
	// tolerance.
	var groups [][]text.Glyph
	var current []text.Glyph
	for _, g := range sorted {
		if len(current) == 0 {
			current = []text.Glyph{g}
			continue
		}
		prev := current[len(current)-1]
		dy := math.Abs((pageTop - g.Origin.Y) - (pageTop - prev.Origin.Y))
		if dy <= 0.5*math.Min(nonZero(g.Size), nonZero(prev.Size)) {
			current = append(current, g)
		} else {
			groups = append(groups, current)
			current = []text.Glyph{g}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	var lines []Line
	var prevY float64
	havePrev := false
	for _, group := range groups {
		line := buildLine(group, pageTop)
		if len(line.Spans) == 0 {
			continue
		}

		// Synthesise one blank line for large vertical gaps, so
		// paragraph structure survives into the plain text forms.
		if havePrev && line.Y-prevY > blankLineGap {
			lines = append(lines, Line{Page: line.Page, Y: prevY + (line.Y-prevY)/2})
		}
		prevY = line.Y
		havePrev = true

		lines = append(lines, line)
	}
	return lines
}

// buildLine orders one baseline group by x and splits it into spans.
func buildLine(glyphs []text.Glyph, pageTop float64) Line {
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Origin.X < glyphs[j].Origin.X
	})

	line := Line{
		Page: glyphs[0].Page,
		Y:    pageTop - glyphs[0].Origin.Y,
	}

	var sb spanBuilder
	prevRight := math.Inf(-1)
	pendingSpace := false

	for _, g := range glyphs {
		// Whitespace glyphs are absorbed as inter-glyph space; their
		// advance still moves the right edge so the gap rule sees
		// them.
		if isWhitespaceText(g.Text) {
			pendingSpace = sb.active
			right := g.Origin.X + g.Advance.X
			if right > prevRight {
				prevRight = right
			}
			continue
		}

		gap := g.Origin.X - prevRight
		switch {
		case !sb.active:
			sb.start(g)
		case gap > spaceThresholdRatio*nonZero(sb.fontSize),
			sizeChanged(sb.fontSize, g.Size):
			line.add(sb.finish())
			sb.start(g)
			pendingSpace = false
		default:
			if pendingSpace {
				sb.text.WriteString(" ")
				pendingSpace = false
			}
			sb.append(g)
		}

		right := g.Origin.X + g.Advance.X
		if right > prevRight {
			prevRight = right
		}
	}
	line.add(sb.finish())

	sort.SliceStable(line.Spans, func(i, j int) bool {
		return line.Spans[i].BBox.Left < line.Spans[j].BBox.Left
	})
	return line
}

func (l *Line) add(span Span, ok bool) {
	if ok {
		l.Spans = append(l.Spans, span)
	}
}

// spanBuilder accumulates glyphs into one span.
type spanBuilder struct {
	active   bool
	text     strings.Builder
	bbox     model.BBox
	fontSize float64
	page     int
}

func (sb *spanBuilder) start(g text.Glyph) {
	sb.active = true
	sb.text.Reset()
	sb.text.WriteString(g.Text)
	sb.bbox = glyphBBox(g)
	sb.fontSize = g.Size
	sb.page = g.Page
}

func (sb *spanBuilder) append(g text.Glyph) {
	sb.text.WriteString(g.Text)
	sb.bbox = sb.bbox.Union(glyphBBox(g))
}

// finish closes the span, trimming surrounding whitespace and
// discarding empty results.
func (sb *spanBuilder) finish() (Span, bool) {
	if !sb.active {
		return Span{}, false
	}
	sb.active = false

	trimmed := strings.TrimSpace(sb.text.String())
	if trimmed == "" {
		return Span{}, false
	}

	return Span{
		Text:     trimmed,
		BBox:     sb.bbox.Normalized(),
		FontSize: sb.fontSize,
		Page:     sb.page,
	}, true
}

// glyphBBox computes a glyph's box in native page space from its
// origin, advance and vertical metrics, with size-relative fallbacks
// when the font carries no metrics.
func glyphBBox(g text.Glyph) model.BBox {
	ascent := g.Ascent
	descent := g.Descent
	if ascent == 0 {
		ascent = g.Size
	}
	if descent == 0 {
		descent = -descentRatio * g.Size
	}

	p1 := model.Point{X: g.Origin.X, Y: g.Origin.Y + descent}
	p2 := model.Point{X: g.Origin.X + g.Advance.X, Y: g.Origin.Y + g.Advance.Y + ascent}
	return model.NewBBox(p1, p2)
}

// sizeChanged reports whether two font sizes differ by more than the
// split threshold.
func sizeChanged(a, b float64) bool {
	larger := math.Max(math.Abs(a), math.Abs(b))
	if larger == 0 {
		return false
	}
	return math.Abs(a-b)/larger > sizeChangeRatio
}

// isWhitespaceText reports whether a glyph's text consists entirely of
// whitespace codepoints.
func isWhitespaceText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func quantize(y float64) float64 {
	return math.Round(y/baselineQuantum) * baselineQuantum
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
