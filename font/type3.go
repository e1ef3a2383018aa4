package font

import (
	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/model"
)

// Type3Font is a user-defined font whose glyphs are content streams.
// It behaves like a simple font except that widths are expressed in
// glyph space and scaled through the font's own FontMatrix instead of
// the implicit 1/1000.
type Type3Font struct {
	*SimpleFont

	fontMatrix model.Matrix
}

// newType3Font builds a Type3 decoder from its dictionary.
func newType3Font(dict core.Dict, resolve Resolver) (*Type3Font, error) {
	base, err := newSimpleFont(dict, resolve)
	if err != nil {
		return nil, err
	}

	f := &Type3Font{
		SimpleFont: base,
		fontMatrix: model.Scale(0.001, 0.001),
	}

	if fmObj := resolved(dict.Get("FontMatrix"), resolve); fmObj != nil {
		if arr, ok := fmObj.(core.Array); ok && len(arr) == 6 {
			if vals, ok := arr.Numbers(); ok {
				copy(f.fontMatrix[:], vals)
			}
		} else {
			f.diag.add("invalid FontMatrix, assuming 1/1000 scale")
		}
	}

	// Type3 fonts are required to carry explicit widths; a missing
	// array leaves every code at width zero.
	if f.widths == nil {
		f.diag.add("Type3 font %s missing Widths array", f.baseName)
		f.widths = map[uint32]float64{}
		f.missingWidth = 0
	}

	return f, nil
}

// Decode partitions into single-byte codes, scaling each width through
// the FontMatrix.
func (f *Type3Font) Decode(b []byte) []Code {
	out := make([]Code, 0, len(b))
	for _, c := range b {
		code := uint32(c)
		w := 0.0
		if gw, ok := f.widths[code]; ok {
			// The horizontal component of the glyph-space advance
			// mapped through the font matrix.
			w = f.fontMatrix.TransformVector(model.Point{X: gw}).X
		}
		out = append(out, Code{
			Code:    code,
			Text:    f.decodeChar(code),
			Width:   w,
			Bytes:   1,
			IsSpace: c == 0x20,
		})
	}
	return out
}

// FontMatrix returns the font's glyph-space transformation.
func (f *Type3Font) FontMatrix() model.Matrix {
	return f.fontMatrix
}
