package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pdftext/text"
)

// PageGlyphs carries one page's glyph stream together with the page
// frame needed to anchor the character grid.
type PageGlyphs struct {
	Glyphs []text.Glyph
	MinX   float64 // MediaBox llx
	MaxY   float64 // MediaBox ury
}

// RenderGrid rasterises the document's glyphs onto a character grid,
// approximating the spatial layout of the source. Cell metrics are
// medians across the whole document so that columns line up between
// pages; conflicting writes shift right within their row. Pages are
// separated by a single blank line.
func RenderGrid(pages []PageGlyphs) string {
	cellW := medianAdvance(pages)
	cellH := medianLineHeight(pages)

	var blocks []string
	for _, page := range pages {
		blocks = append(blocks, renderPage(page, cellW, cellH))
	}
	return strings.Join(blocks, "\n\n")
}

// renderPage rasterises one page into newline-joined rows with
// trailing whitespace removed.
func renderPage(page PageGlyphs, cellW, cellH float64) string {
	rows := make(map[int]map[int]rune)
	maxRow := 0

	for _, g := range page.Glyphs {
		first := firstRune(g.Text)
		if first == 0 {
			continue
		}

		col := int(math.Round((g.Origin.X - page.MinX) / cellW))
		row := int(math.Round((page.MaxY - g.Origin.Y) / cellH))
		if row < 0 {
			row = 0
		}
		if col < 0 {
			col = 0
		}
		if row > maxRow {
			maxRow = row
		}

		cells := rows[row]
		if cells == nil {
			cells = make(map[int]rune)
			rows[row] = cells
		}

		// Keep the earlier write; the newcomer slides right until a
		// free cell turns up in the same row.
		for {
			if _, occupied := cells[col]; !occupied {
				cells[col] = first
				break
			}
			col++
		}

		// Multi-codepoint fragments spill into the following cells.
		rest := []rune(g.Text)[1:]
		for _, r := range rest {
			col++
			if _, occupied := cells[col]; !occupied {
				cells[col] = r
			}
		}
	}

	var sb strings.Builder
	for row := 0; row <= maxRow; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		cells := rows[row]
		if len(cells) == 0 {
			continue
		}

		cols := make([]int, 0, len(cells))
		for col := range cells {
			cols = append(cols, col)
		}
		sort.Ints(cols)

		pos := 0
		for _, col := range cols {
			for pos < col {
				sb.WriteByte(' ')
				pos++
			}
			sb.WriteRune(cells[col])
			pos++
		}
	}
	return sb.String()
}

// medianAdvance computes the document-wide median glyph advance,
// floored at one point.
func medianAdvance(pages []PageGlyphs) float64 {
	var advances []float64
	for _, page := range pages {
		for _, g := range page.Glyphs {
			adv := math.Hypot(g.Advance.X, g.Advance.Y)
			if adv > 0 {
				advances = append(advances, adv)
			}
		}
	}
	return math.Max(1, median(advances))
}

// medianLineHeight computes the document-wide median distance between
// consecutive baselines, floored at one point.
func medianLineHeight(pages []PageGlyphs) float64 {
	var heights []float64
	for _, page := range pages {
		seen := make(map[float64]bool)
		var baselines []float64
		for _, g := range page.Glyphs {
			y := math.Round(page.MaxY - g.Origin.Y)
			if !seen[y] {
				seen[y] = true
				baselines = append(baselines, y)
			}
		}
		sort.Float64s(baselines)
		for i := 1; i < len(baselines); i++ {
			if d := baselines[i] - baselines[i-1]; d > 0 {
				heights = append(heights, d)
			}
		}
	}
	return math.Max(1, median(heights))
}

// median returns the middle value of the input, or zero when empty.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// firstRune returns the first codepoint of a string, or zero when the
// string is empty or starts with a space or tab.
func firstRune(s string) rune {
	for _, r := range s {
		if r == ' ' || r == '\t' {
			return 0
		}
		return r
	}
	return 0
}
