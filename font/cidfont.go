package font

import (
	"strings"

	"github.com/tsawler/pdftext/core"
)

// CIDFont is a Type0 composite font. Input bytes are partitioned into
// variable-length codes by the font's CMap, codes map to CIDs, and
// CIDs carry the width and Unicode information.
type CIDFont struct {
	baseName string

	encoding  *CIDEncoding
	toUnicode *ToUnicodeCMap

	widths       map[uint32]float64 // CID -> glyph-space width
	defaultWidth float64
	metrics      descriptorMetrics

	diag diagnostics
}

// newCIDFont builds a Type0 decoder from its dictionary.
func newCIDFont(dict core.Dict, resolve Resolver) (*CIDFont, error) {
	f := &CIDFont{
		baseName:     dictName(dict, "BaseFont", resolve),
		defaultWidth: 1000,
	}

	f.parseEncoding(dict, resolve)
	f.toUnicode = parseToUnicode(dict, resolve, &f.diag)

	// The descendant CIDFont dictionary carries widths and the
	// descriptor.
	if desc := f.descendant(dict, resolve); desc != nil {
		if dw, ok := dictNumber(desc, "DW", resolve); ok {
			f.defaultWidth = dw
		}
		f.widths = parseCIDWidths(desc, resolve, &f.diag)
		f.metrics = parseDescriptor(desc, resolve)
	} else {
		f.diag.add("Type0 font %s missing DescendantFonts", f.baseName)
	}

	if f.toUnicode == nil {
		f.diag.add("CID font %s has no ToUnicode map, unmapped codes become replacement characters", f.baseName)
	}

	return f, nil
}

// parseEncoding resolves /Encoding: a predefined CMap name or an
// embedded CMap stream.
func (f *CIDFont) parseEncoding(dict core.Dict, resolve Resolver) {
	encObj := resolved(dict.Get("Encoding"), resolve)

	switch enc := encObj.(type) {
	case core.Name:
		name := string(enc)
		switch {
		case name == "Identity-H":
			f.encoding = IdentityEncoding(false)
		case name == "Identity-V":
			f.encoding = IdentityEncoding(true)
		default:
			// Other predefined CMaps need the full Adobe registry
			// tables. Partition as Identity so decoding still makes
			// progress, and record the loss.
			f.diag.add("predefined CMap %q is not available, partitioning as Identity", name)
			f.encoding = IdentityEncoding(strings.HasSuffix(name, "-V"))
		}

	case *core.Stream:
		data, err := enc.Decode()
		if err != nil {
			f.diag.add("failed to decode embedded CMap: %v", err)
			f.encoding = IdentityEncoding(false)
			return
		}
		parsed, err := ParseCIDEncoding(data)
		if err != nil {
			f.diag.add("malformed embedded CMap: %v", err)
		}
		f.encoding = parsed

	default:
		f.diag.add("Type0 font %s missing Encoding, assuming Identity-H", f.baseName)
		f.encoding = IdentityEncoding(false)
	}
}

// descendant returns the single descendant CIDFont dictionary.
func (f *CIDFont) descendant(dict core.Dict, resolve Resolver) core.Dict {
	obj := resolved(dict.Get("DescendantFonts"), resolve)
	arr, ok := obj.(core.Array)
	if !ok || len(arr) == 0 {
		return nil
	}
	desc, ok := resolved(arr[0], resolve).(core.Dict)
	if !ok {
		return nil
	}
	return desc
}

// parseCIDWidths parses the /W array. Entries come in two forms:
// "c [w1 w2 ...]" assigns consecutive widths starting at CID c, and
// "cFirst cLast w" assigns one width to a CID range.
func parseCIDWidths(desc core.Dict, resolve Resolver, diag *diagnostics) map[uint32]float64 {
	obj := resolved(desc.Get("W"), resolve)
	arr, ok := obj.(core.Array)
	if !ok {
		return nil
	}

	widths := make(map[uint32]float64)
	i := 0
	for i < len(arr) {
		first, ok := core.ToNumber(resolved(arr[i], resolve))
		if !ok {
			diag.add("malformed /W array at index %d", i)
			break
		}

		if i+1 >= len(arr) {
			break
		}
		second := resolved(arr[i+1], resolve)

		if wa, ok := second.(core.Array); ok {
			for j, elem := range wa {
				if w, ok := core.ToNumber(resolved(elem, resolve)); ok {
					widths[uint32(int(first)+j)] = w
				}
			}
			i += 2
			continue
		}

		last, ok1 := core.ToNumber(second)
		if !ok1 || i+2 >= len(arr) {
			diag.add("malformed /W array at index %d", i)
			break
		}
		w, ok2 := core.ToNumber(resolved(arr[i+2], resolve))
		if !ok2 {
			diag.add("malformed /W array at index %d", i+2)
			break
		}
		for cid := int(first); cid <= int(last); cid++ {
			widths[uint32(cid)] = w
		}
		i += 3
	}
	return widths
}

// Decode partitions the bytes by the font's CMap and decodes each code
// through ToUnicode.
func (f *CIDFont) Decode(b []byte) []Code {
	var out []Code
	pos := 0
	for pos < len(b) {
		code, size := f.encoding.NextCode(b[pos:])
		if size == 0 {
			break
		}

		cid, ok := f.encoding.CID(code)
		if !ok {
			f.diag.add("code %d outside the CMap's CID ranges", code)
			cid = 0
		}

		out = append(out, Code{
			Code:    cid,
			Text:    f.decodeCID(code, cid),
			Width:   f.width(cid) / 1000,
			Bytes:   size,
			IsSpace: false, // Word spacing applies to simple fonts only
		})
		pos += size
	}
	return out
}

// decodeCID maps a code/CID pair to Unicode. The ToUnicode CMap is
// keyed by character code; for identity encodings code and CID
// coincide, so the CID doubles as a fallback key.
func (f *CIDFont) decodeCID(code, cid uint32) string {
	if f.toUnicode != nil {
		if s, ok := f.toUnicode.Lookup(code); ok {
			return normalize(s)
		}
		if cid != code {
			if s, ok := f.toUnicode.Lookup(cid); ok {
				return normalize(s)
			}
		}
	}

	f.diag.add("font %s has unmappable CIDs, output contains replacement characters", f.baseName)
	return "�"
}

// width returns the glyph-space width of a CID.
func (f *CIDFont) width(cid uint32) float64 {
	if w, ok := f.widths[cid]; ok {
		return w
	}
	return f.defaultWidth
}

// WritingMode reports the advance axis selected by the CMap.
func (f *CIDFont) WritingMode() WritingMode {
	if f.encoding != nil && f.encoding.WMode() == 1 {
		return WritingVertical
	}
	return WritingHorizontal
}

// BaseName returns the font's base name.
func (f *CIDFont) BaseName() string {
	return f.baseName
}

// Metrics returns descriptor ascent/descent when available.
func (f *CIDFont) Metrics() (float64, float64, bool) {
	return f.metrics.ascent, f.metrics.descent, f.metrics.haveMetrics
}

// Diagnostics returns collected soft problems.
func (f *CIDFont) Diagnostics() []string {
	return f.diag.list()
}
