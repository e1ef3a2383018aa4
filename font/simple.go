package font

import (
	"github.com/tsawler/pdftext/core"
)

// SimpleFont covers the single-byte font flavours: Type1 (including
// the Standard 14), MMType1 and TrueType. Character codes are always
// one byte.
type SimpleFont struct {
	baseName string
	subtype  string

	encoding  [256]rune
	toUnicode *ToUnicodeCMap

	widths       map[uint32]float64 // Glyph-space units (1/1000 em)
	missingWidth float64
	metrics      descriptorMetrics

	diag diagnostics
}

// newSimpleFont builds a simple font decoder from its dictionary.
func newSimpleFont(dict core.Dict, resolve Resolver) (*SimpleFont, error) {
	f := &SimpleFont{
		baseName: dictName(dict, "BaseFont", resolve),
		subtype:  dictName(dict, "Subtype", resolve),
	}

	f.metrics = parseDescriptor(dict, resolve)
	f.missingWidth = f.metrics.missingWidth

	f.buildEncoding(dict, resolve)
	f.toUnicode = parseToUnicode(dict, resolve, &f.diag)

	f.widths = parseSimpleWidths(dict, resolve, &f.diag)
	if f.widths == nil {
		if std, ok := standardWidths(f.baseName); ok {
			f.widths = f.widthsFromRunes(std)
		}
	}

	return f, nil
}

// buildEncoding resolves the font's code -> Unicode table: implicit
// base encoding, then /Encoding (name or dictionary), then the
// Differences overlay.
func (f *SimpleFont) buildEncoding(dict core.Dict, resolve Resolver) {
	// Implicit base encoding. TrueType fonts without an /Encoding are
	// commonly WinAnsi; the symbol fonts carry their own built-in
	// tables.
	switch f.baseName {
	case "Symbol":
		f.encoding = SymbolEncoding
	case "ZapfDingbats":
		f.encoding = ZapfDingbatsEncoding
	default:
		if f.subtype == "TrueType" {
			f.encoding = WinAnsiEncoding
		} else {
			f.encoding = StandardEncoding
		}
	}

	encObj := resolved(dict.Get("Encoding"), resolve)
	switch enc := encObj.(type) {
	case nil:
		return

	case core.Name:
		if table, ok := namedEncoding(string(enc)); ok {
			f.encoding = *table
		} else {
			f.diag.add("unknown encoding %q, treating as StandardEncoding", enc)
			f.encoding = StandardEncoding
		}

	case core.Dict:
		if base := dictName(enc, "BaseEncoding", resolve); base != "" {
			if table, ok := namedEncoding(base); ok {
				f.encoding = *table
			} else {
				f.diag.add("unknown base encoding %q, treating as StandardEncoding", base)
				f.encoding = StandardEncoding
			}
		}
		if diffsObj := resolved(enc.Get("Differences"), resolve); diffsObj != nil {
			if diffs, ok := diffsObj.(core.Array); ok {
				f.applyDifferences(diffs, resolve)
			}
		}

	default:
		f.diag.add("invalid /Encoding type %T, treating as StandardEncoding", encObj)
		f.encoding = StandardEncoding
	}
}

// applyDifferences overlays a /Differences array: integers set the
// current code, names assign glyphs to consecutive codes.
func (f *SimpleFont) applyDifferences(diffs core.Array, resolve Resolver) {
	code := 0
	for _, item := range diffs {
		switch v := resolved(item, resolve).(type) {
		case core.Int:
			code = int(v)
		case core.Real:
			code = int(v)
		case core.Name:
			if code >= 0 && code < 256 {
				if s, ok := GlyphToUnicode(string(v)); ok && s != "" {
					runes := []rune(s)
					f.encoding[code] = runes[0]
				} else {
					f.diag.add("unknown glyph name %q in font %s", v, f.baseName)
					f.encoding[code] = 0
				}
			}
			code++
		default:
			f.diag.add("invalid Differences entry %T", item)
		}
	}
}

// widthsFromRunes converts a rune-keyed standard width table to the
// font's code space using its encoding.
func (f *SimpleFont) widthsFromRunes(byRune map[rune]float64) map[uint32]float64 {
	widths := make(map[uint32]float64)
	for code := 0; code < 256; code++ {
		r := f.encoding[code]
		if r == 0 {
			continue
		}
		if w, ok := byRune[r]; ok {
			widths[uint32(code)] = w
		}
	}
	return widths
}

// Decode partitions the bytes into single-byte codes and decodes each.
func (f *SimpleFont) Decode(b []byte) []Code {
	out := make([]Code, 0, len(b))
	for _, c := range b {
		code := uint32(c)
		out = append(out, Code{
			Code:    code,
			Text:    f.decodeChar(code),
			Width:   f.width(code) / 1000,
			Bytes:   1,
			IsSpace: c == 0x20,
		})
	}
	return out
}

// decodeChar resolves a code to Unicode: ToUnicode first (it is
// authoritative when present), then the encoding table. Unmapped codes
// yield U+FFFD and flag the font as lossy once.
func (f *SimpleFont) decodeChar(code uint32) string {
	if f.toUnicode != nil {
		if s, ok := f.toUnicode.Lookup(code); ok {
			return normalize(s)
		}
	}

	if code < 256 {
		if r := f.encoding[code]; r != 0 {
			return normalize(string(r))
		}
	}

	f.diag.add("font %s has unmappable codes, output contains replacement characters", f.baseName)
	return "�"
}

// width returns the advance width in glyph-space units.
func (f *SimpleFont) width(code uint32) float64 {
	if w, ok := f.widths[code]; ok {
		return w
	}
	if f.missingWidth > 0 {
		return f.missingWidth
	}
	// No width information at all: half an em keeps spacing sane.
	return 500
}

// WritingMode reports the advance axis; simple fonts are always
// horizontal.
func (f *SimpleFont) WritingMode() WritingMode {
	return WritingHorizontal
}

// BaseName returns the font's base name.
func (f *SimpleFont) BaseName() string {
	return f.baseName
}

// Metrics returns descriptor ascent/descent when available.
func (f *SimpleFont) Metrics() (float64, float64, bool) {
	return f.metrics.ascent, f.metrics.descent, f.metrics.haveMetrics
}

// Diagnostics returns collected soft problems.
func (f *SimpleFont) Diagnostics() []string {
	return f.diag.list()
}
